package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/dto"
	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type EditalFaseController struct {
	DB *gorm.DB
}

func NewEditalFaseController(db *gorm.DB) *EditalFaseController {
	return &EditalFaseController{DB: db}
}

// Garante que o edital existe e pertence à prefeitura do usuário.
func (ctrl *EditalFaseController) editalDoTenant(c *fiber.Ctx, editalID uuid.UUID) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return err
	}
	var cnt int64
	if err := ctrl.DB.Model(&model.EditalModel{}).
		Where("edital_id = ? AND edital_prefeitura_id = ?", editalID, prefeituraID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar edital")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Edital não encontrado")
	}
	return nil
}

// 🟢 POST /api/a/edital-fases — agenda a janela de uma fase
func (ctrl *EditalFaseController) CreateEditalFase(c *fiber.Ctx) error {
	var req dto.EditalFaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	if !service.FaseValida(req.EditalFaseFase) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fase desconhecida")
	}

	if err := ctrl.editalDoTenant(c, req.EditalFaseEditalID); err != nil {
		return helper.FromFiberError(c, err)
	}

	janela := req.ToModel()
	if err := ctrl.DB.Create(janela).Error; err != nil {
		log.Printf("[ERROR] Falha ao agendar fase: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao agendar fase")
	}

	return helper.JsonCreated(c, "Janela de fase agendada", dto.ToEditalFaseResponse(janela))
}

// 🟢 GET /api/a/edital-fases/by-edital/:edital_id
func (ctrl *EditalFaseController) GetFasesByEdital(c *fiber.Ctx) error {
	editalID, err := uuid.Parse(c.Params("edital_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de edital inválido")
	}

	if err := ctrl.editalDoTenant(c, editalID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var janelas []model.EditalFaseModel
	if err := ctrl.DB.
		Where("edital_fase_edital_id = ?", editalID).
		Find(&janelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar janelas de fase")
	}

	return helper.JsonOK(c, "Janelas de fase do edital", dto.ToEditalFaseResponseList(janelas))
}

// 🟡 PATCH /api/a/edital-fases/:id — edita datas/observação.
// O flag bloqueada não é editável por aqui: só o job do sistema o liga,
// e nada automático o desliga.
func (ctrl *EditalFaseController) UpdateEditalFase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de janela inválido")
	}

	var janela model.EditalFaseModel
	if err := ctrl.DB.Where("edital_fase_id = ?", id).First(&janela).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Janela de fase não encontrada")
	}

	if err := ctrl.editalDoTenant(c, janela.EditalFaseEditalID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EditalFaseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.EditalFaseDataInicio != nil {
		updates["edital_fase_data_inicio"] = *req.EditalFaseDataInicio
	}
	if req.EditalFaseDataFim != nil {
		updates["edital_fase_data_fim"] = *req.EditalFaseDataFim
	}
	if req.EditalFaseObservacao != nil {
		updates["edital_fase_observacao"] = *req.EditalFaseObservacao
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&janela).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar janela de fase")
	}

	if err := ctrl.DB.Where("edital_fase_id = ?", id).First(&janela).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar janela")
	}

	return helper.JsonUpdated(c, "Janela de fase atualizada", dto.ToEditalFaseResponse(&janela))
}
