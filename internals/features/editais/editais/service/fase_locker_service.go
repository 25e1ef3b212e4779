package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resultado de uma execução do locker de fases.
type FaseLockerResult struct {
	Bloqueadas int `json:"locked"`
	Avancadas  int `json:"advanced"`
}

// FaseLockerService é o job recorrente que bloqueia janelas de fase vencidas
// e avança os editais cuja fase corrente acabou de expirar. Seguro para rodar
// repetidamente ou em paralelo: janelas já bloqueadas saem da seleção e o
// avanço usa update condicional na fase observada.
type FaseLockerService struct {
	Store      EditalStore
	Transition *TransitionService
	Now        func() time.Time
}

func NewFaseLockerService(store EditalStore, transition *TransitionService) *FaseLockerService {
	return &FaseLockerService{
		Store:      store,
		Transition: transition,
		Now:        time.Now,
	}
}

func (s *FaseLockerService) Executar(ctx context.Context) (FaseLockerResult, error) {
	now := s.Now()

	// 1) Seleciona janelas vencidas ainda não bloqueadas
	janelas, err := s.Store.ListExpiredPhaseWindows(ctx, now)
	if err != nil {
		return FaseLockerResult{}, fmt.Errorf("falha ao listar janelas vencidas: %w", err)
	}
	if len(janelas) == 0 {
		return FaseLockerResult{}, nil
	}

	// 2) Bloqueio em lote (atômico). Se falhar, a execução inteira falha e
	// nenhum avanço acontece.
	ids := make([]uuid.UUID, 0, len(janelas))
	for _, j := range janelas {
		ids = append(ids, j.EditalFaseID)
	}
	locked, err := s.Store.LockPhaseWindows(ctx, ids)
	if err != nil {
		return FaseLockerResult{}, fmt.Errorf("falha ao bloquear janelas: %w", err)
	}

	// 3) Agrupa as fases bloqueadas por edital
	fasesPorEdital := make(map[uuid.UUID]map[string]struct{})
	for _, j := range janelas {
		set, ok := fasesPorEdital[j.EditalFaseEditalID]
		if !ok {
			set = make(map[string]struct{})
			fasesPorEdital[j.EditalFaseEditalID] = set
		}
		set[j.EditalFaseFase] = struct{}{}
	}

	// 4) Avança cada edital cuja fase corrente está no conjunto bloqueado.
	// Falha em um edital é logada e não interrompe os demais.
	avancadas := 0
	for editalID, fases := range fasesPorEdital {
		edital, err := s.Store.GetEditalSistema(ctx, editalID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[CRON ERROR] edital %s: falha ao recarregar: %v", editalID, err)
			}
			continue
		}
		if _, ok := fases[edital.EditalStatus]; !ok {
			continue
		}
		novaFase, err := s.Transition.AvancarSistema(ctx, editalID, edital.EditalStatus)
		if err != nil {
			log.Printf("[CRON ERROR] edital %s: falha ao avançar fase: %v", editalID, err)
			continue
		}
		log.Printf("[CRON] edital %s avançou para %s", editalID, novaFase)
		avancadas++
	}

	return FaseLockerResult{Bloqueadas: int(locked), Avancadas: avancadas}, nil
}
