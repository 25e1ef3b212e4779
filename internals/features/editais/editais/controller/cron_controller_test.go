package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"

	"editalize_backend/internals/configs"
	"editalize_backend/internals/features/editais/editais/controller"
	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	"editalize_backend/internals/features/editais/editais/service/mocks"
)

func appDeCron(t *testing.T, store *mocks.MockEditalStore) *fiber.App {
	t.Helper()
	transition := service.NewTransitionService(store, nil)
	cronCtrl := controller.NewCronController(
		service.NewFaseLockerService(store, transition),
		service.NewInscricaoLockerService(store),
	)
	app := fiber.New()
	app.Post("/api/cron/fases/bloquear", cronCtrl.BloquearFasesVencidas)
	app.Post("/api/cron/inscricoes/encerrar", cronCtrl.EncerrarInscricoesVencidas)
	return app
}

func comCronSecret(t *testing.T, segredo string) {
	t.Helper()
	anterior := configs.CronSecret
	configs.CronSecret = segredo
	t.Cleanup(func() { configs.CronSecret = anterior })
}

func TestCronController_EncerrarInscricoesVencidas(t *testing.T) {
	t.Run("sem bearer responde 401 com objeto de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)
		// nenhuma query pode acontecer sem credencial

		comCronSecret(t, "segredo-de-teste")
		app := appDeCron(t, store)

		resp, err := app.Test(httptest.NewRequest("POST", "/api/cron/inscricoes/encerrar", nil))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", resp.StatusCode)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if _, ok := body["erro"]; !ok {
			t.Fatalf("esperava chave 'erro' no corpo, obteve %v", body)
		}
	})

	t.Run("bearer errado responde 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		comCronSecret(t, "segredo-de-teste")
		app := appDeCron(t, store)

		req := httptest.NewRequest("POST", "/api/cron/inscricoes/encerrar", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer chute-errado")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", resp.StatusCode)
		}
	})

	t.Run("segredo não configurado tranca o endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		comCronSecret(t, "")
		app := appDeCron(t, store)

		req := httptest.NewRequest("POST", "/api/cron/inscricoes/encerrar", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer ")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("esperava 401 com segredo vazio, obteve %d", resp.StatusCode)
		}
	})

	t.Run("sem inscrições vencidas responde mensagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)
		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		comCronSecret(t, "segredo-de-teste")
		app := appDeCron(t, store)

		req := httptest.NewRequest("POST", "/api/cron/inscricoes/encerrar", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer segredo-de-teste")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if _, ok := body["mensagem"]; !ok {
			t.Fatalf("esperava chave 'mensagem', obteve %v", body)
		}
		if _, ok := body["sucesso"]; ok {
			t.Fatalf("'sucesso' não deveria aparecer quando nada expirou: %v", body)
		}
	})

	t.Run("inscrições encerradas respondem sucesso com títulos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)

		vencido := model.EditalModel{
			EditalStatus: service.FaseInscricao,
			EditalTitulo: "Edital de Dança",
		}
		store.EXPECT().
			ListEditaisComInscricaoExpirada(gomock.Any(), gomock.Any()).
			Return([]model.EditalModel{vencido}, nil)
		store.EXPECT().
			BatchUpdateStatusFrom(gomock.Any(), gomock.Any(), service.FaseInscricao, service.FaseInscricaoEncerrada).
			Return(int64(1), nil)

		comCronSecret(t, "segredo-de-teste")
		app := appDeCron(t, store)

		req := httptest.NewRequest("POST", "/api/cron/inscricoes/encerrar", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer segredo-de-teste")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
		}
		var body struct {
			Sucesso          bool     `json:"sucesso"`
			EditaisAlterados []string `json:"editais_alterados"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if !body.Sucesso || len(body.EditaisAlterados) != 1 || body.EditaisAlterados[0] != "Edital de Dança" {
			t.Fatalf("corpo inesperado: %+v", body)
		}
	})
}

func TestCronController_BloquearFasesVencidas(t *testing.T) {
	t.Run("sem janelas vencidas responde contadores zerados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockEditalStore(ctrl)
		store.EXPECT().
			ListExpiredPhaseWindows(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		app := appDeCron(t, store)

		resp, err := app.Test(httptest.NewRequest("POST", "/api/cron/fases/bloquear", nil))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
		}
		var body struct {
			Locked   int `json:"locked"`
			Advanced int `json:"advanced"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if body.Locked != 0 || body.Advanced != 0 {
			t.Fatalf("esperava {0,0}, obteve {%d,%d}", body.Locked, body.Advanced)
		}
	})
}
