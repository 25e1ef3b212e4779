package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"editalize_backend/internals/configs"
	"editalize_backend/internals/features/editais/editais/service"
	helper "editalize_backend/internals/helpers"
)

// Endpoints acionados por trigger externo de tempo (cron da infraestrutura).
type CronController struct {
	FaseLocker      *service.FaseLockerService
	InscricaoLocker *service.InscricaoLockerService
}

func NewCronController(faseLocker *service.FaseLockerService, inscricaoLocker *service.InscricaoLockerService) *CronController {
	return &CronController{FaseLocker: faseLocker, InscricaoLocker: inscricaoLocker}
}

// 🟢 POST /api/cron/fases/bloquear
// Bloqueia janelas vencidas e avança editais cuja fase corrente expirou.
// Idempotente: repetir a chamada sem mudanças no banco não bloqueia nem
// avança nada de novo.
func (ctrl *CronController) BloquearFasesVencidas(c *fiber.Ctx) error {
	resultado, err := ctrl.FaseLocker.Executar(c.UserContext())
	if err != nil {
		log.Printf("[CRON ERROR] locker de fases: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar janelas de fase")
	}

	log.Printf("[CRON] janelas bloqueadas=%d, editais avançados=%d", resultado.Bloqueadas, resultado.Avancadas)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locked":   resultado.Bloqueadas,
		"advanced": resultado.Avancadas,
	})
}

// 🟢 POST /api/cron/inscricoes/encerrar
// Protegido por segredo compartilhado (Authorization: Bearer CRON_SECRET).
func (ctrl *CronController) EncerrarInscricoesVencidas(c *fiber.Ctx) error {
	segredo := configs.CronSecret
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	token := ""
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		token = strings.TrimSpace(authz[7:])
	}
	if segredo == "" || token != segredo {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"erro": "credencial de cron ausente ou inválida",
		})
	}

	titulos, err := ctrl.InscricaoLocker.Executar(c.UserContext())
	if err != nil {
		log.Printf("[CRON ERROR] encerramento de inscrições: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar inscrições")
	}

	if len(titulos) == 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"mensagem": "Nenhum edital com inscrição vencida",
		})
	}

	log.Printf("[CRON] inscrições encerradas: %d editais", len(titulos))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sucesso":           true,
		"editais_alterados": titulos,
	})
}
