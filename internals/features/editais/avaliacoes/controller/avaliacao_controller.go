package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/avaliacoes/dto"
	"editalize_backend/internals/features/editais/avaliacoes/model"
	helper "editalize_backend/internals/helpers"
	helperAuth "editalize_backend/internals/helpers/auth"
)

type AvaliacaoController struct {
	DB *gorm.DB
}

func NewAvaliacaoController(db *gorm.DB) *AvaliacaoController {
	return &AvaliacaoController{DB: db}
}

// 🟢 POST /api/a/avaliacoes — designa um parecerista para um projeto
func (ctrl *AvaliacaoController) CreateAvaliacao(c *fiber.Ctx) error {
	var req dto.AvaliacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	nova := req.ToModel()
	if err := ctrl.DB.Create(nova).Error; err != nil {
		log.Printf("[ERROR] Falha ao designar avaliador: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao designar avaliador")
	}

	return helper.JsonCreated(c, "Avaliador designado", dto.ToAvaliacaoResponse(nova))
}

// 🟢 GET /api/u/avaliacoes/minhas — avaliações do parecerista logado
func (ctrl *AvaliacaoController) GetMinhasAvaliacoes(c *fiber.Ctx) error {
	avaliadorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var avaliacoes []model.AvaliacaoModel
	if err := ctrl.DB.
		Where("avaliacao_avaliador_id = ?", avaliadorID).
		Order("avaliacao_created_at DESC").
		Find(&avaliacoes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avaliações")
	}

	return helper.JsonOK(c, "Suas avaliações", dto.ToAvaliacaoResponseList(avaliacoes))
}

// Busca a avaliação garantindo que pertence ao parecerista logado e que
// ainda não foi finalizada/bloqueada.
func (ctrl *AvaliacaoController) avaliacaoEditavel(c *fiber.Ctx, id uuid.UUID) (*model.AvaliacaoModel, error) {
	avaliadorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var avaliacao model.AvaliacaoModel
	if err := ctrl.DB.
		Where("avaliacao_id = ? AND avaliacao_avaliador_id = ?", id, avaliadorID).
		First(&avaliacao).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Avaliação não encontrada")
	}
	if avaliacao.AvaliacaoStatus != model.AvaliacaoEmAndamento {
		return nil, fiber.NewError(fiber.StatusConflict, "Avaliação não está mais editável")
	}
	return &avaliacao, nil
}

// 🟡 PATCH /api/u/avaliacoes/:id — lança/atualiza notas
func (ctrl *AvaliacaoController) UpdateAvaliacao(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de avaliação inválido")
	}

	avaliacao, err := ctrl.avaliacaoEditavel(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AvaliacaoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.AvaliacaoPontuacaoTotal != nil {
		updates["avaliacao_pontuacao_total"] = *req.AvaliacaoPontuacaoTotal
	}
	if req.AvaliacaoCriterios != nil {
		updates["avaliacao_criterios"] = req.AvaliacaoCriterios
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(avaliacao).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar avaliação")
	}

	if err := ctrl.DB.Where("avaliacao_id = ?", id).First(avaliacao).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar avaliação")
	}

	return helper.JsonUpdated(c, "Avaliação atualizada", dto.ToAvaliacaoResponse(avaliacao))
}

// 🟡 POST /api/u/avaliacoes/:id/finalizar — torna a avaliação imutável e
// elegível para a consolidação de notas
func (ctrl *AvaliacaoController) FinalizarAvaliacao(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de avaliação inválido")
	}

	avaliacao, err := ctrl.avaliacaoEditavel(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if avaliacao.AvaliacaoPontuacaoTotal == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lance a pontuação antes de finalizar")
	}

	if err := ctrl.DB.Model(avaliacao).
		Update("avaliacao_status", model.AvaliacaoFinalizada).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao finalizar avaliação")
	}

	avaliacao.AvaliacaoStatus = model.AvaliacaoFinalizada
	return helper.JsonUpdated(c, "Avaliação finalizada", dto.ToAvaliacaoResponse(avaliacao))
}
