package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	editalModel "editalize_backend/internals/features/editais/editais/model"
	editalService "editalize_backend/internals/features/editais/editais/service"
	"editalize_backend/internals/features/editais/projetos/dto"
	"editalize_backend/internals/features/editais/projetos/model"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type ProjetoController struct {
	DB *gorm.DB
}

func NewProjetoController(db *gorm.DB) *ProjetoController {
	return &ProjetoController{DB: db}
}

// 🟢 POST /api/u/projetos — inscrição de projeto pelo proponente.
// Só aceita enquanto o edital estiver na fase de inscrição.
func (ctrl *ProjetoController) CreateProjeto(c *fiber.Ctx) error {
	proponenteID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ProjetoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var edital editalModel.EditalModel
	if err := ctrl.DB.
		Where("edital_id = ? AND edital_prefeitura_id = ? AND edital_ativo = true", req.ProjetoEditalID, prefeituraID).
		First(&edital).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Edital não encontrado")
	}
	if edital.EditalStatus != editalService.FaseInscricao {
		return helper.JsonError(c, fiber.StatusConflict, "As inscrições deste edital não estão abertas")
	}

	novoProjeto := req.ToModel(proponenteID)
	if err := ctrl.DB.Create(novoProjeto).Error; err != nil {
		log.Printf("[ERROR] Falha ao inscrever projeto: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao inscrever projeto")
	}

	return helper.JsonCreated(c, "Projeto inscrito com sucesso", dto.ToProjetoResponse(novoProjeto))
}

// 🟢 GET /api/u/projetos/meus — projetos do proponente logado
func (ctrl *ProjetoController) GetMeusProjetos(c *fiber.Ctx) error {
	proponenteID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var projetos []model.ProjetoModel
	if err := ctrl.DB.
		Where("projeto_proponente_id = ?", proponenteID).
		Order("projeto_created_at DESC").
		Find(&projetos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar projetos")
	}

	return helper.JsonOK(c, "Seus projetos", dto.ToProjetoResponseList(projetos))
}

// 🟢 GET /api/a/projetos/by-edital/:edital_id — listagem administrativa
func (ctrl *ProjetoController) GetProjetosByEdital(c *fiber.Ctx) error {
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

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.ProjetoModel{}).
		Where("projeto_edital_id = ?", editalID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar projetos")
	}

	var projetos []model.ProjetoModel
	if err := base.
		Order("projeto_nota_final DESC NULLS LAST, projeto_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&projetos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar projetos")
	}

	return helper.JsonList(c, "Projetos do edital", dto.ToProjetoResponseList(projetos),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/projetos/:id/habilitacao — decisão documental
func (ctrl *ProjetoController) UpdateHabilitacao(c *fiber.Ctx) error {
	prefeituraID, err := helperAuth.GetPrefeituraID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de projeto inválido")
	}

	var req dto.HabilitacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	// Join com editais para garantir o escopo do tenant
	var projeto model.ProjetoModel
	if err := ctrl.DB.
		Joins("JOIN editais ON editais.edital_id = projetos.projeto_edital_id").
		Where("projetos.projeto_id = ? AND editais.edital_prefeitura_id = ?", id, prefeituraID).
		First(&projeto).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Projeto não encontrado")
	}

	if err := ctrl.DB.Model(&projeto).
		Update("projeto_status_habilitacao", req.StatusHabilitacao).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar habilitação")
	}

	projeto.ProjetoStatusHabilitacao = req.StatusHabilitacao
	return helper.JsonUpdated(c, "Habilitação atualizada", dto.ToProjetoResponse(&projeto))
}
