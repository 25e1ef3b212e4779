package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/dto"
	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	helper "editalize_backend/internals/helpers"
)

// Superfície pública de transparência (somente leitura).
type EditalPublicController struct {
	DB *gorm.DB
}

func NewEditalPublicController(db *gorm.DB) *EditalPublicController {
	return &EditalPublicController{DB: db}
}

// 🟢 GET /api/public/editais?prefeitura_id=...
// Lista editais já publicados (fora da fase de criação).
func (ctrl *EditalPublicController) ListEditaisPublicados(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.EditalModel{}).
		Where("edital_ativo = true AND edital_status <> ?", service.FaseCriacao)

	if raw := c.Query("prefeitura_id"); raw != "" {
		prefeituraID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "prefeitura_id inválido")
		}
		base = base.Where("edital_prefeitura_id = ?", prefeituraID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar editais")
	}

	var editais []model.EditalModel
	if err := base.
		Order("edital_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&editais).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar editais")
	}

	return helper.JsonList(c, "Editais publicados", dto.ToEditalResponseList(editais),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
