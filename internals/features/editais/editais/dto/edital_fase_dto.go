package dto

import (
	"time"

	"github.com/google/uuid"

	"editalize_backend/internals/features/editais/editais/model"
)

// 🔹 Request para agendar a janela de uma fase
type EditalFaseRequest struct {
	EditalFaseEditalID   uuid.UUID  `json:"edital_fase_edital_id" validate:"required"`
	EditalFaseFase       string     `json:"edital_fase_fase" validate:"required"`
	EditalFaseDataInicio *time.Time `json:"edital_fase_data_inicio"`
	EditalFaseDataFim    *time.Time `json:"edital_fase_data_fim"`
	EditalFaseObservacao string     `json:"edital_fase_observacao"`
}

// 🔹 Atualização parcial (datas/observação; bloqueio é só do sistema)
type EditalFaseUpdateRequest struct {
	EditalFaseDataInicio *time.Time `json:"edital_fase_data_inicio"`
	EditalFaseDataFim    *time.Time `json:"edital_fase_data_fim"`
	EditalFaseObservacao *string    `json:"edital_fase_observacao"`
}

type EditalFaseResponse struct {
	EditalFaseID         uuid.UUID  `json:"edital_fase_id"`
	EditalFaseEditalID   uuid.UUID  `json:"edital_fase_edital_id"`
	EditalFaseFase       string     `json:"edital_fase_fase"`
	EditalFaseDataInicio *time.Time `json:"edital_fase_data_inicio,omitempty"`
	EditalFaseDataFim    *time.Time `json:"edital_fase_data_fim,omitempty"`
	EditalFaseBloqueada  bool       `json:"edital_fase_bloqueada"`
	EditalFaseObservacao string     `json:"edital_fase_observacao"`
}

func (r *EditalFaseRequest) ToModel() *model.EditalFaseModel {
	return &model.EditalFaseModel{
		EditalFaseEditalID:   r.EditalFaseEditalID,
		EditalFaseFase:       r.EditalFaseFase,
		EditalFaseDataInicio: r.EditalFaseDataInicio,
		EditalFaseDataFim:    r.EditalFaseDataFim,
		EditalFaseObservacao: r.EditalFaseObservacao,
	}
}

func ToEditalFaseResponse(m *model.EditalFaseModel) *EditalFaseResponse {
	return &EditalFaseResponse{
		EditalFaseID:         m.EditalFaseID,
		EditalFaseEditalID:   m.EditalFaseEditalID,
		EditalFaseFase:       m.EditalFaseFase,
		EditalFaseDataInicio: m.EditalFaseDataInicio,
		EditalFaseDataFim:    m.EditalFaseDataFim,
		EditalFaseBloqueada:  m.EditalFaseBloqueada,
		EditalFaseObservacao: m.EditalFaseObservacao,
	}
}

func ToEditalFaseResponseList(models []model.EditalFaseModel) []EditalFaseResponse {
	var result []EditalFaseResponse
	for _, m := range models {
		result = append(result, *ToEditalFaseResponse(&m))
	}
	return result
}
