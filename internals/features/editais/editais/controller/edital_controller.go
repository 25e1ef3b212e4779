package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/dto"
	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type EditalController struct {
	DB         *gorm.DB
	Transition *service.TransitionService
}

func NewEditalController(db *gorm.DB, transition *service.TransitionService) *EditalController {
	return &EditalController{DB: db, Transition: transition}
}

// 🟢 POST /api/a/editais
func (ctrl *EditalController) CreateEdital(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EditalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	novoEdital := req.ToModel(prefeituraID)
	if err := ctrl.DB.Create(novoEdital).Error; err != nil {
		log.Printf("[ERROR] Falha ao salvar edital: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar edital")
	}

	return helper.JsonCreated(c, "Edital criado com sucesso", dto.ToEditalResponse(novoEdital))
}

// 🟢 GET /api/a/editais
func (ctrl *EditalController) ListEditais(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.EditalModel{}).
		Where("edital_prefeitura_id = ?", prefeituraID)

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

	return helper.JsonList(c, "Editais listados", dto.ToEditalResponseList(editais),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/editais/:id
func (ctrl *EditalController) GetEditalByID(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de edital inválido")
	}

	var edital model.EditalModel
	if err := ctrl.DB.
		Where("edital_id = ? AND edital_prefeitura_id = ?", id, prefeituraID).
		First(&edital).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Edital não encontrado")
	}

	return helper.JsonOK(c, "Edital encontrado", dto.ToEditalResponse(&edital))
}

// 🟡 PATCH /api/a/editais/:id
func (ctrl *EditalController) UpdateEdital(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de edital inválido")
	}

	var edital model.EditalModel
	if err := ctrl.DB.
		Where("edital_id = ? AND edital_prefeitura_id = ?", id, prefeituraID).
		First(&edital).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Edital não encontrado")
	}

	var req dto.EditalUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.EditalTitulo != nil {
		updates["edital_titulo"] = *req.EditalTitulo
	}
	if req.EditalDescricao != nil {
		updates["edital_descricao"] = *req.EditalDescricao
	}
	if req.EditalAreasCulturais != nil {
		updates["edital_areas_culturais"] = pq.StringArray(req.EditalAreasCulturais)
	}
	if req.EditalConfiguracao != nil {
		updates["edital_configuracao"] = req.EditalConfiguracao
	}
	if req.EditalInscricaoDataFim != nil {
		updates["edital_inscricao_data_fim"] = *req.EditalInscricaoDataFim
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&edital).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar edital")
	}

	if err := ctrl.DB.Where("edital_id = ?", id).First(&edital).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar edital")
	}

	return helper.JsonUpdated(c, "Edital atualizado", dto.ToEditalResponse(&edital))
}

// 🟡 POST /api/a/editais/:id/avancar — avança exatamente uma fase
func (ctrl *EditalController) AvancarFase(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de edital inválido")
	}

	novaFase, err := ctrl.Transition.Avancar(c.UserContext(), id, prefeituraID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEditalNaoEncontrado):
			return helper.JsonError(c, fiber.StatusNotFound, "Edital não encontrado")
		case errors.Is(err, service.ErrFaseTerminal):
			return helper.JsonError(c, fiber.StatusConflict, "Edital já está na fase final (arquivamento)")
		case errors.Is(err, service.ErrFaseInvalida):
			return helper.JsonError(c, fiber.StatusConflict, "Fase atual do edital é inválida")
		case errors.Is(err, service.ErrConflitoFase):
			return helper.JsonError(c, fiber.StatusConflict, "A fase do edital mudou, recarregue e tente de novo")
		default:
			log.Printf("[ERROR] Falha ao avançar fase do edital %s: %v", id, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao avançar fase")
		}
	}

	return helper.JsonUpdated(c, "Fase avançada com sucesso", fiber.Map{
		"edital_id":  id,
		"nova_fase":  novaFase,
		"fase_label": service.FaseLabels[novaFase],
	})
}
