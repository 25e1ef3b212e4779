package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	"editalize_backend/internals/features/editais/editais/service/mocks"
)

// editalEmMemoria simula o estado persistido de um edital entre as chamadas
// do store, para exercitar execuções consecutivas do locker.
type editalEmMemoria struct {
	edital  *model.EditalModel
	janelas []model.EditalFaseModel
}

func (m *editalEmMemoria) wire(store *mocks.MockEditalStore) {
	store.EXPECT().
		ListExpiredPhaseWindows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) ([]model.EditalFaseModel, error) {
			var vencidas []model.EditalFaseModel
			for _, j := range m.janelas {
				if !j.EditalFaseBloqueada && j.EditalFaseDataFim != nil && j.EditalFaseDataFim.Before(now) {
					vencidas = append(vencidas, j)
				}
			}
			return vencidas, nil
		}).
		AnyTimes()
	store.EXPECT().
		LockPhaseWindows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID) (int64, error) {
			var n int64
			for _, id := range ids {
				for i := range m.janelas {
					if m.janelas[i].EditalFaseID == id && !m.janelas[i].EditalFaseBloqueada {
						m.janelas[i].EditalFaseBloqueada = true
						n++
					}
				}
			}
			return n, nil
		}).
		AnyTimes()
	store.EXPECT().
		GetEditalSistema(gomock.Any(), m.edital.EditalID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*model.EditalModel, error) {
			copia := *m.edital
			return &copia, nil
		}).
		AnyTimes()
	store.EXPECT().
		UpdateEditalStatusFrom(gomock.Any(), m.edital.EditalID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, statusAtual, novoStatus string) (int64, error) {
			if m.edital.EditalStatus != statusAtual {
				return 0, nil
			}
			m.edital.EditalStatus = novoStatus
			m.edital.EditalVersao++
			return 1, nil
		}).
		AnyTimes()
}

func janelaVencida(editalID uuid.UUID, fase string, fim time.Time) model.EditalFaseModel {
	return model.EditalFaseModel{
		EditalFaseID:       uuid.New(),
		EditalFaseEditalID: editalID,
		EditalFaseFase:     fase,
		EditalFaseDataFim:  &fim,
	}
}

func TestFaseLockerService_Executar(t *testing.T) {
	agora := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ontem := agora.Add(-24 * time.Hour)

	t.Run("bloqueia a janela vencida e avança o edital", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		estado := &editalEmMemoria{edital: novoEdital(service.FaseInscricao)}
		estado.janelas = []model.EditalFaseModel{
			janelaVencida(estado.edital.EditalID, service.FaseInscricao, ontem),
		}
		estado.wire(store)

		locker := service.NewFaseLockerService(store, service.NewTransitionService(store, nil))
		locker.Now = func() time.Time { return agora }

		res, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.Bloqueadas != 1 || res.Avancadas != 1 {
			t.Fatalf("esperava {1,1}, obteve {%d,%d}", res.Bloqueadas, res.Avancadas)
		}
		if estado.edital.EditalStatus != service.FaseInscricaoEncerrada {
			t.Fatalf("edital deveria estar em inscricao_encerrada, está em %q", estado.edital.EditalStatus)
		}
	})

	t.Run("segunda execução é um no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		estado := &editalEmMemoria{edital: novoEdital(service.FaseHabilitacao)}
		estado.janelas = []model.EditalFaseModel{
			janelaVencida(estado.edital.EditalID, service.FaseHabilitacao, ontem),
		}
		estado.wire(store)

		locker := service.NewFaseLockerService(store, service.NewTransitionService(store, nil))
		locker.Now = func() time.Time { return agora }

		if _, err := locker.Executar(context.Background()); err != nil {
			t.Fatalf("primeira execução falhou: %v", err)
		}
		res, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("segunda execução falhou: %v", err)
		}
		if res.Bloqueadas != 0 || res.Avancadas != 0 {
			t.Fatalf("segunda execução deveria ser {0,0}, obteve {%d,%d}", res.Bloqueadas, res.Avancadas)
		}
		if estado.edital.EditalStatus != service.FaseResultadoPreliminarHabilitacao {
			t.Fatalf("status não deveria mudar de novo, está em %q", estado.edital.EditalStatus)
		}
	})

	t.Run("janela de fase que não é a corrente só bloqueia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		// Edital já passou de publicacao; a janela vencida ficou para trás.
		estado := &editalEmMemoria{edital: novoEdital(service.FaseAvaliacaoTecnica)}
		estado.janelas = []model.EditalFaseModel{
			janelaVencida(estado.edital.EditalID, service.FasePublicacao, ontem),
		}
		estado.wire(store)

		locker := service.NewFaseLockerService(store, service.NewTransitionService(store, nil))
		locker.Now = func() time.Time { return agora }

		res, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.Bloqueadas != 1 || res.Avancadas != 0 {
			t.Fatalf("esperava {1,0}, obteve {%d,%d}", res.Bloqueadas, res.Avancadas)
		}
		if estado.edital.EditalStatus != service.FaseAvaliacaoTecnica {
			t.Fatalf("edital não deveria avançar, está em %q", estado.edital.EditalStatus)
		}
	})

	t.Run("falha no bloqueio em lote aborta a execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		editalID := uuid.New()
		store.EXPECT().
			ListExpiredPhaseWindows(gomock.Any(), gomock.Any()).
			Return([]model.EditalFaseModel{janelaVencida(editalID, service.FaseInscricao, ontem)}, nil)
		store.EXPECT().
			LockPhaseWindows(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("deadlock detected"))
		// nenhum GetEditalSistema nem avanço pode acontecer

		locker := service.NewFaseLockerService(store, service.NewTransitionService(store, nil))
		locker.Now = func() time.Time { return agora }

		if _, err := locker.Executar(context.Background()); err == nil {
			t.Fatal("esperava erro quando o bloqueio em lote falha")
		}
	})

	t.Run("falha em um edital não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		bom := novoEdital(service.FaseRecursoHabilitacao)
		ruim := novoEdital(service.FaseInscricao)
		janelas := []model.EditalFaseModel{
			janelaVencida(bom.EditalID, service.FaseRecursoHabilitacao, ontem),
			janelaVencida(ruim.EditalID, service.FaseInscricao, ontem),
		}

		store.EXPECT().
			ListExpiredPhaseWindows(gomock.Any(), gomock.Any()).
			Return(janelas, nil)
		store.EXPECT().
			LockPhaseWindows(gomock.Any(), gomock.Any()).
			Return(int64(2), nil)
		store.EXPECT().
			GetEditalSistema(gomock.Any(), bom.EditalID).
			Return(bom, nil)
		store.EXPECT().
			GetEditalSistema(gomock.Any(), ruim.EditalID).
			Return(nil, errors.New("connection refused"))
		store.EXPECT().
			UpdateEditalStatusFrom(gomock.Any(), bom.EditalID, service.FaseRecursoHabilitacao, service.FaseResultadoDefinitivoHabilitacao).
			Return(int64(1), nil)

		locker := service.NewFaseLockerService(store, service.NewTransitionService(store, nil))
		locker.Now = func() time.Time { return agora }

		res, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.Bloqueadas != 2 || res.Avancadas != 1 {
			t.Fatalf("esperava {2,1}, obteve {%d,%d}", res.Bloqueadas, res.Avancadas)
		}
	})
}

func TestInscricaoLockerService_Executar(t *testing.T) {
	agora := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("encerra inscrições vencidas e devolve os títulos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		a := novoEdital(service.FaseInscricao)
		a.EditalTitulo = "Edital de Música"
		b := novoEdital(service.FaseInscricao)
		b.EditalTitulo = "Edital de Teatro"

		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), agora).
			Return([]model.EditalModel{*a, *b}, nil)
		store.EXPECT().
			BatchUpdateStatusFrom(gomock.Any(), []uuid.UUID{a.EditalID, b.EditalID}, service.FaseInscricao, service.FaseInscricaoEncerrada).
			Return(int64(2), nil)

		locker := service.NewInscricaoLockerService(store)
		locker.Now = func() time.Time { return agora }

		titulos, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(titulos) != 2 || titulos[0] != "Edital de Música" || titulos[1] != "Edital de Teatro" {
			t.Fatalf("títulos errados: %v", titulos)
		}
	})

	t.Run("sem vencidos não há update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), agora).
			Return(nil, nil)
		// BatchUpdateStatusFrom não pode ser chamado

		locker := service.NewInscricaoLockerService(store)
		locker.Now = func() time.Time { return agora }

		titulos, err := locker.Executar(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if titulos != nil {
			t.Fatalf("esperava nil, obteve %v", titulos)
		}
	})


	t.Run("edital avançado entre a leitura e o lote fica de fora", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		a := novoEdital(service.FaseInscricao)
		b := novoEdital(service.FaseInscricao)

		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), agora).
			Return([]model.EditalModel{*a, *b}, nil)
		// O update em lote carrega o status de partida na cláusula: um edital
		// que outro ator já tirou de `inscricao` não é reescrito (1 de 2 linhas).
		store.EXPECT().
			BatchUpdateStatusFrom(gomock.Any(), []uuid.UUID{a.EditalID, b.EditalID}, service.FaseInscricao, service.FaseInscricaoEncerrada).
			Return(int64(1), nil)

		locker := service.NewInscricaoLockerService(store)
		locker.Now = func() time.Time { return agora }

		if _, err := locker.Executar(context.Background()); err != nil {
			t.Fatalf("linhas parcialmente afetadas não são erro: %v", err)
		}
	})

	t.Run("falha no lote propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		a := novoEdital(service.FaseInscricao)
		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), agora).
			Return([]model.EditalModel{*a}, nil)
		store.EXPECT().
			BatchUpdateStatusFrom(gomock.Any(), gomock.Any(), service.FaseInscricao, service.FaseInscricaoEncerrada).
			Return(int64(0), errors.New("statement timeout"))

		locker := service.NewInscricaoLockerService(store)
		locker.Now = func() time.Time { return agora }

		if _, err := locker.Executar(context.Background()); err == nil {
			t.Fatal("esperava erro quando o update em lote falha")
		}
	})
}
