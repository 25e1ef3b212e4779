package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"editalize_backend/internals/features/editais/projetos/model"
)

// 🔹 Request de inscrição de projeto
type ProjetoRequest struct {
	ProjetoEditalID uuid.UUID      `json:"projeto_edital_id" validate:"required"`
	ProjetoTitulo   string         `json:"projeto_titulo" validate:"required,max=255"`
	ProjetoDados    datatypes.JSON `json:"projeto_dados"`
}

// 🔹 Decisão de habilitação (admin)
type HabilitacaoRequest struct {
	StatusHabilitacao string `json:"status_habilitacao" validate:"required,oneof=habilitado inabilitado"`
}

type ProjetoResponse struct {
	ProjetoID                uuid.UUID      `json:"projeto_id"`
	ProjetoEditalID          uuid.UUID      `json:"projeto_edital_id"`
	ProjetoProponenteID      uuid.UUID      `json:"projeto_proponente_id"`
	ProjetoTitulo            string         `json:"projeto_titulo"`
	ProjetoStatusHabilitacao string         `json:"projeto_status_habilitacao"`
	ProjetoNotaFinal         *float64       `json:"projeto_nota_final,omitempty"`
	ProjetoStatusAtual       string         `json:"projeto_status_atual"`
	ProjetoDados             datatypes.JSON `json:"projeto_dados,omitempty"`
	ProjetoCreatedAt         string         `json:"projeto_created_at"`
}

func (r *ProjetoRequest) ToModel(proponenteID uuid.UUID) *model.ProjetoModel {
	return &model.ProjetoModel{
		ProjetoEditalID:          r.ProjetoEditalID,
		ProjetoProponenteID:      proponenteID,
		ProjetoTitulo:            r.ProjetoTitulo,
		ProjetoStatusHabilitacao: model.HabilitacaoPendente,
		ProjetoStatusAtual:       "Inscrito",
		ProjetoDados:             r.ProjetoDados,
	}
}

func ToProjetoResponse(m *model.ProjetoModel) *ProjetoResponse {
	return &ProjetoResponse{
		ProjetoID:                m.ProjetoID,
		ProjetoEditalID:          m.ProjetoEditalID,
		ProjetoProponenteID:      m.ProjetoProponenteID,
		ProjetoTitulo:            m.ProjetoTitulo,
		ProjetoStatusHabilitacao: m.ProjetoStatusHabilitacao,
		ProjetoNotaFinal:         m.ProjetoNotaFinal,
		ProjetoStatusAtual:       m.ProjetoStatusAtual,
		ProjetoDados:             m.ProjetoDados,
		ProjetoCreatedAt:         m.ProjetoCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToProjetoResponseList(models []model.ProjetoModel) []ProjetoResponse {
	var result []ProjetoResponse
	for _, m := range models {
		result = append(result, *ToProjetoResponse(&m))
	}
	return result
}
