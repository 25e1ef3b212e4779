package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"editalize_backend/internals/features/editais/avaliacoes/service"
	"editalize_backend/internals/features/editais/avaliacoes/service/mocks"
)

func TestRankingService_Consolidar(t *testing.T) {
	ctx := context.Background()
	editalID := uuid.New()

	t.Run("nota final é a média aritmética das avaliações finalizadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockRankingStore(ctrl)

		projetoID := uuid.New()
		store.EXPECT().
			ListProjetosComNotas(ctx, editalID).
			Return([]service.ProjetoNotas{
				{ProjetoID: projetoID, Notas: []float64{7.0, 8.0, 9.0}},
			}, nil)

		var mu sync.Mutex
		gravadas := map[uuid.UUID]float64{}
		store.EXPECT().
			UpdateProjetoNotaFinal(ctx, projetoID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, nota float64) error {
				mu.Lock()
				defer mu.Unlock()
				gravadas[id] = nota
				return nil
			})

		svc := service.NewRankingService(store)
		res, err := svc.Consolidar(ctx, editalID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.Atualizados != 1 || res.Falhas != 0 {
			t.Fatalf("esperava {1,0}, obteve {%d,%d}", res.Atualizados, res.Falhas)
		}
		if nota := gravadas[projetoID]; nota != 8.0 {
			t.Fatalf("média errada: esperava 8.0, obteve %v", nota)
		}
	})

	t.Run("projeto sem avaliação finalizada fica fora do lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockRankingStore(ctrl)

		comNotas := uuid.New()
		semNotas := uuid.New()
		store.EXPECT().
			ListProjetosComNotas(ctx, editalID).
			Return([]service.ProjetoNotas{
				{ProjetoID: comNotas, Notas: []float64{6.5, 7.5}},
				{ProjetoID: semNotas, Notas: nil},
			}, nil)
		store.EXPECT().
			UpdateProjetoNotaFinal(ctx, comNotas, 7.0).
			Return(nil)
		// nenhum update para o projeto sem notas

		svc := service.NewRankingService(store)
		res, err := svc.Consolidar(ctx, editalID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.Atualizados != 1 || res.Falhas != 0 {
			t.Fatalf("esperava {1,0}, obteve {%d,%d}", res.Atualizados, res.Falhas)
		}
	})

	t.Run("edital sem projetos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockRankingStore(ctrl)

		store.EXPECT().
			ListProjetosComNotas(ctx, editalID).
			Return(nil, nil)

		svc := service.NewRankingService(store)
		if _, err := svc.Consolidar(ctx, editalID); !errors.Is(err, service.ErrSemProjetos) {
			t.Fatalf("esperava ErrSemProjetos, obteve %v", err)
		}
	})

	t.Run("falha parcial é contada e não reverte os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockRankingStore(ctrl)

		ok1 := uuid.New()
		ruim := uuid.New()
		ok2 := uuid.New()
		store.EXPECT().
			ListProjetosComNotas(ctx, editalID).
			Return([]service.ProjetoNotas{
				{ProjetoID: ok1, Notas: []float64{9.0}},
				{ProjetoID: ruim, Notas: []float64{5.0}},
				{ProjetoID: ok2, Notas: []float64{8.0, 10.0}},
			}, nil)

		var mu sync.Mutex
		gravadas := map[uuid.UUID]float64{}
		store.EXPECT().
			UpdateProjetoNotaFinal(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, nota float64) error {
				if id == ruim {
					return errors.New("deadlock detected")
				}
				mu.Lock()
				defer mu.Unlock()
				gravadas[id] = nota
				return nil
			}).
			Times(3)

		svc := service.NewRankingService(store)
		res, err := svc.Consolidar(ctx, editalID)
		if err != nil {
			t.Fatalf("falha parcial não deveria virar erro da operação: %v", err)
		}
		if res.Atualizados != 2 || res.Falhas != 1 {
			t.Fatalf("esperava {2,1}, obteve {%d,%d}", res.Atualizados, res.Falhas)
		}
		if gravadas[ok1] != 9.0 || gravadas[ok2] != 9.0 {
			t.Fatalf("notas dos projetos bem-sucedidos erradas: %v", gravadas)
		}
	})

	t.Run("erro na leitura propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockRankingStore(ctrl)

		store.EXPECT().
			ListProjetosComNotas(ctx, editalID).
			Return(nil, errors.New("connection refused"))

		svc := service.NewRankingService(store)
		if _, err := svc.Consolidar(ctx, editalID); err == nil {
			t.Fatal("esperava erro propagado da leitura")
		}
	})
}
