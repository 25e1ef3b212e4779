package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"editalize_backend/internals/features/editais/avaliacoes/model"
)

// 🔹 Atribuição de avaliador a um projeto (admin)
type AvaliacaoRequest struct {
	AvaliacaoProjetoID   uuid.UUID `json:"avaliacao_projeto_id" validate:"required"`
	AvaliacaoAvaliadorID uuid.UUID `json:"avaliacao_avaliador_id" validate:"required"`
}

// 🔹 Lançamento de notas pelo parecerista
type AvaliacaoUpdateRequest struct {
	AvaliacaoPontuacaoTotal *float64       `json:"avaliacao_pontuacao_total" validate:"omitempty,gte=0"`
	AvaliacaoCriterios      datatypes.JSON `json:"avaliacao_criterios"`
}

type AvaliacaoResponse struct {
	AvaliacaoID             uuid.UUID      `json:"avaliacao_id"`
	AvaliacaoProjetoID      uuid.UUID      `json:"avaliacao_projeto_id"`
	AvaliacaoAvaliadorID    uuid.UUID      `json:"avaliacao_avaliador_id"`
	AvaliacaoPontuacaoTotal *float64       `json:"avaliacao_pontuacao_total,omitempty"`
	AvaliacaoStatus         string         `json:"avaliacao_status"`
	AvaliacaoCriterios      datatypes.JSON `json:"avaliacao_criterios,omitempty"`
}

func (r *AvaliacaoRequest) ToModel() *model.AvaliacaoModel {
	return &model.AvaliacaoModel{
		AvaliacaoProjetoID:   r.AvaliacaoProjetoID,
		AvaliacaoAvaliadorID: r.AvaliacaoAvaliadorID,
		AvaliacaoStatus:      model.AvaliacaoEmAndamento,
	}
}

func ToAvaliacaoResponse(m *model.AvaliacaoModel) *AvaliacaoResponse {
	return &AvaliacaoResponse{
		AvaliacaoID:             m.AvaliacaoID,
		AvaliacaoProjetoID:      m.AvaliacaoProjetoID,
		AvaliacaoAvaliadorID:    m.AvaliacaoAvaliadorID,
		AvaliacaoPontuacaoTotal: m.AvaliacaoPontuacaoTotal,
		AvaliacaoStatus:         m.AvaliacaoStatus,
		AvaliacaoCriterios:      m.AvaliacaoCriterios,
	}
}

func ToAvaliacaoResponseList(models []model.AvaliacaoModel) []AvaliacaoResponse {
	var result []AvaliacaoResponse
	for _, m := range models {
		result = append(result, *ToAvaliacaoResponse(&m))
	}
	return result
}
