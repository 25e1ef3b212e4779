package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/avaliacoes/service"
	editalModel "editalize_backend/internals/features/editais/editais/model"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type RankingController struct {
	DB      *gorm.DB
	Ranking *service.RankingService
}

func NewRankingController(db *gorm.DB, ranking *service.RankingService) *RankingController {
	return &RankingController{DB: db, Ranking: ranking}
}

// 🟡 POST /api/a/editais/:edital_id/consolidar-notas
// Recalcula a nota final de todos os projetos do edital. Seguro de repetir:
// em caso de falha parcial, rodar de novo é o próprio procedimento de
// recuperação.
func (ctrl *RankingController) ConsolidarNotas(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	editalID, err := uuid.Parse(c.Params("edital_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de edital inválido")
	}

	var cnt int64
	if err := ctrl.DB.Model(&editalModel.EditalModel{}).
		Where("edital_id = ? AND edital_prefeitura_id = ?", editalID, prefeituraID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar edital")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Edital não encontrado")
	}

	resultado, err := ctrl.Ranking.Consolidar(c.UserContext(), editalID)
	if err != nil {
		if errors.Is(err, service.ErrSemProjetos) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Edital não possui projetos para consolidar")
		}
		log.Printf("[ERROR] Falha na consolidação do edital %s: %v", editalID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao consolidar notas")
	}

	msg := "Notas consolidadas"
	if resultado.Falhas > 0 {
		msg = "Consolidação concluída com falhas parciais; execute novamente para recuperar"
	}
	return helper.JsonOK(c, msg, resultado)
}
