package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InscricaoLockerService encerra automaticamente inscrições vencidas:
// todo edital em `inscricao` com prazo expirado passa para
// `inscricao_encerrada` em um único update em lote.
type InscricaoLockerService struct {
	Store EditalStore
	Now   func() time.Time
}

func NewInscricaoLockerService(store EditalStore) *InscricaoLockerService {
	return &InscricaoLockerService{Store: store, Now: time.Now}
}

// Executar devolve os títulos dos editais alterados (para observabilidade).
func (s *InscricaoLockerService) Executar(ctx context.Context) ([]string, error) {
	editais, err := s.Store.ListEditaisComInscricaoExpirada(ctx, s.Now())
	if err != nil {
		return nil, fmt.Errorf("falha ao listar editais com inscrição vencida: %w", err)
	}
	if len(editais) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(editais))
	titulos := make([]string, 0, len(editais))
	for _, e := range editais {
		ids = append(ids, e.EditalID)
		titulos = append(titulos, e.EditalTitulo)
	}

	if _, err := s.Store.BatchUpdateStatusFrom(ctx, ids, FaseInscricao, FaseInscricaoEncerrada); err != nil {
		return nil, fmt.Errorf("falha ao encerrar inscrições: %w", err)
	}

	return titulos, nil
}
