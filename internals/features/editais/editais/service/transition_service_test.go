package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	"editalize_backend/internals/features/editais/editais/service/mocks"
)

func novoEdital(status string) *model.EditalModel {
	return &model.EditalModel{
		EditalID:           uuid.New(),
		EditalNumero:       "001/2026",
		EditalTitulo:       "Fomento à Cultura",
		EditalStatus:       status,
		EditalPrefeituraID: uuid.New(),
		EditalAtivo:        true,
		EditalVersao:       1,
	}
}

func TestTransitionService_Avancar(t *testing.T) {
	ctx := context.Background()

	t.Run("avança uma fase e devolve a nova", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		edital := novoEdital(service.FaseInscricao)
		store.EXPECT().
			GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
			Return(edital, nil)
		store.EXPECT().
			UpdateEditalStatusFrom(ctx, edital.EditalID, service.FaseInscricao, service.FaseInscricaoEncerrada).
			Return(int64(1), nil)

		svc := service.NewTransitionService(store, nil)
		novaFase, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if novaFase != service.FaseInscricaoEncerrada {
			t.Fatalf("esperava inscricao_encerrada, obteve %q", novaFase)
		}
	})

	t.Run("edital de outro tenant responde como não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		editalID := uuid.New()
		outraPrefeitura := uuid.New()
		store.EXPECT().
			GetEdital(ctx, editalID, outraPrefeitura).
			Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewTransitionService(store, nil)
		_, err := svc.Avancar(ctx, editalID, outraPrefeitura)
		if !errors.Is(err, service.ErrEditalNaoEncontrado) {
			t.Fatalf("esperava ErrEditalNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("fase terminal não avança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		edital := novoEdital(service.FaseArquivamento)
		store.EXPECT().
			GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
			Return(edital, nil)
		// nenhum update pode acontecer

		svc := service.NewTransitionService(store, nil)
		_, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
		if !errors.Is(err, service.ErrFaseTerminal) {
			t.Fatalf("esperava ErrFaseTerminal, obteve %v", err)
		}
	})

	t.Run("status fora do catálogo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		edital := novoEdital("limbo")
		store.EXPECT().
			GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
			Return(edital, nil)

		svc := service.NewTransitionService(store, nil)
		_, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
		if !errors.Is(err, service.ErrFaseInvalida) {
			t.Fatalf("esperava ErrFaseInvalida, obteve %v", err)
		}
	})

	t.Run("corrida perdida vira conflito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		edital := novoEdital(service.FasePublicacao)
		store.EXPECT().
			GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
			Return(edital, nil)
		store.EXPECT().
			UpdateEditalStatusFrom(ctx, edital.EditalID, service.FasePublicacao, service.FaseInscricao).
			Return(int64(0), nil)

		svc := service.NewTransitionService(store, nil)
		_, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
		if !errors.Is(err, service.ErrConflitoFase) {
			t.Fatalf("esperava ErrConflitoFase, obteve %v", err)
		}
	})
}

// Caminhada completa: 15 avanços a partir de criacao, cada um devolvendo a
// fase seguinte do catálogo; o 16º falha com fase terminal.
func TestTransitionService_CaminhadaCompleta(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockEditalStore(ctrl)

	edital := novoEdital(service.FaseCriacao)

	store.EXPECT().
		GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*model.EditalModel, error) {
			copia := *edital
			return &copia, nil
		}).
		Times(16)
	store.EXPECT().
		UpdateEditalStatusFrom(ctx, edital.EditalID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, statusAtual, novoStatus string) (int64, error) {
			if edital.EditalStatus != statusAtual {
				return 0, nil
			}
			edital.EditalStatus = novoStatus
			edital.EditalVersao++
			return 1, nil
		}).
		Times(15)

	svc := service.NewTransitionService(store, nil)

	ultimoIdx := -1
	for passo := 0; passo < 15; passo++ {
		novaFase, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
		if err != nil {
			t.Fatalf("passo %d: erro inesperado: %v", passo, err)
		}
		if novaFase != service.Fases[passo+1] {
			t.Fatalf("passo %d: esperava %q, obteve %q", passo, service.Fases[passo+1], novaFase)
		}
		idx := service.IndexOfFase(novaFase)
		if idx <= ultimoIdx || idx > 15 {
			t.Fatalf("passo %d: índice %d quebra a monotonicidade", passo, idx)
		}
		ultimoIdx = idx
	}

	if _, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID); !errors.Is(err, service.ErrFaseTerminal) {
		t.Fatalf("16ª chamada deveria falhar com ErrFaseTerminal, obteve %v", err)
	}
	if edital.EditalStatus != service.FaseArquivamento {
		t.Fatalf("edital deveria permanecer em arquivamento, está em %q", edital.EditalStatus)
	}
}

type notifierSpy struct {
	ch chan string
}

func (n *notifierSpy) NotificarMudancaFase(_ uuid.UUID, novaFase string) {
	n.ch <- novaFase
}

func TestTransitionService_NotificacaoBestEffort(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockEditalStore(ctrl)

	edital := novoEdital(service.FaseHomologacao)
	store.EXPECT().
		GetEdital(ctx, edital.EditalID, edital.EditalPrefeituraID).
		Return(edital, nil)
	store.EXPECT().
		UpdateEditalStatusFrom(ctx, edital.EditalID, service.FaseHomologacao, service.FaseArquivamento).
		Return(int64(1), nil)

	spy := &notifierSpy{ch: make(chan string, 1)}
	svc := service.NewTransitionService(store, spy)

	novaFase, err := svc.Avancar(ctx, edital.EditalID, edital.EditalPrefeituraID)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if novaFase != service.FaseArquivamento {
		t.Fatalf("esperava arquivamento, obteve %q", novaFase)
	}

	select {
	case notificada := <-spy.ch:
		if notificada != service.FaseArquivamento {
			t.Fatalf("notificação com fase errada: %q", notificada)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fan-out de notificação não foi disparado")
	}
}
