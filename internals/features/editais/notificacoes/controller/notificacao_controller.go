package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/notificacoes/model"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type NotificacaoController struct {
	DB *gorm.DB
}

func NewNotificacaoController(db *gorm.DB) *NotificacaoController {
	return &NotificacaoController{DB: db}
}

// 🟢 GET /api/u/notificacoes — notificações do usuário logado
func (ctrl *NotificacaoController) GetMinhasNotificacoes(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var notificacoes []model.NotificacaoModel
	if err := ctrl.DB.
		Where("notificacao_user_id = ?", userID).
		Order("notificacao_created_at DESC").
		Limit(100).
		Find(&notificacoes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar notificações")
	}

	return helper.JsonOK(c, "Suas notificações", notificacoes)
}

// 🟡 PATCH /api/u/notificacoes/:id/lida
func (ctrl *NotificacaoController) MarcarComoLida(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de notificação inválido")
	}

	res := ctrl.DB.Model(&model.NotificacaoModel{}).
		Where("notificacao_id = ? AND notificacao_user_id = ?", id, userID).
		Update("notificacao_lida", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao marcar notificação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
	}

	return helper.JsonUpdated(c, "Notificação marcada como lida", nil)
}
