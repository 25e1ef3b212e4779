package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEditalNaoEncontrado = errors.New("edital não encontrado")
	ErrFaseInvalida        = errors.New("fase atual do edital não pertence ao catálogo")
	ErrFaseTerminal        = errors.New("edital já está na fase final (arquivamento)")
	ErrConflitoFase        = errors.New("a fase do edital mudou durante a operação")
)

// Notifier recebe o fan-out de mudança de fase. A entrega é best-effort:
// falhas nunca afetam o resultado da transição.
type Notifier interface {
	NotificarMudancaFase(editalID uuid.UUID, novaFase string)
}

// TransitionService avança um edital exatamente uma fase no catálogo.
// Chamadas consecutivas NÃO são idempotentes (cada uma avança um passo);
// proteção contra duplo submit fica na camada de interface.
type TransitionService struct {
	Store    EditalStore
	Notifier Notifier
}

func NewTransitionService(store EditalStore, notifier Notifier) *TransitionService {
	return &TransitionService{Store: store, Notifier: notifier}
}

// Avancar: caminho interativo (admin/gestor). A busca é filtrada por tenant —
// edital de outra prefeitura responde como não-encontrado, independente do
// papel de quem chama.
func (s *TransitionService) Avancar(ctx context.Context, editalID, prefeituraID uuid.UUID) (string, error) {
	edital, err := s.Store.GetEdital(ctx, editalID, prefeituraID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEditalNaoEncontrado
		}
		return "", err
	}
	return s.avancarDe(ctx, edital.EditalID, edital.EditalStatus)
}

// AvancarSistema: caminho dos jobs (autoridade de serviço, sem tenant).
func (s *TransitionService) AvancarSistema(ctx context.Context, editalID uuid.UUID, statusAtual string) (string, error) {
	return s.avancarDe(ctx, editalID, statusAtual)
}

func (s *TransitionService) avancarDe(ctx context.Context, editalID uuid.UUID, statusAtual string) (string, error) {
	idx := IndexOfFase(statusAtual)
	if idx < 0 {
		return "", ErrFaseInvalida
	}
	if idx == len(Fases)-1 {
		return "", ErrFaseTerminal
	}
	novaFase := Fases[idx+1]

	// Update condicional no status observado: elimina o lost update entre
	// leitura e escrita e o duplo avanço de jobs sobrepostos.
	rows, err := s.Store.UpdateEditalStatusFrom(ctx, editalID, statusAtual, novaFase)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", ErrConflitoFase
	}

	s.dispararNotificacao(editalID, novaFase)

	return novaFase, nil
}

// Fan-out em goroutine destacada; pânico ou erro só aparecem no log.
func (s *TransitionService) dispararNotificacao(editalID uuid.UUID, novaFase string) {
	if s.Notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] pânico ao notificar mudança de fase do edital %s: %v", editalID, r)
			}
		}()
		s.Notifier.NotificarMudancaFase(editalID, novaFase)
	}()
}
