package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"editalize_backend/internals/features/editais/editais/model"
	"editalize_backend/internals/features/editais/editais/service"
)

// 🔹 Request para criar edital
type EditalRequest struct {
	EditalNumero           string         `json:"edital_numero" validate:"required,max=50"`
	EditalTitulo           string         `json:"edital_titulo" validate:"required,max=255"`
	EditalDescricao        string         `json:"edital_descricao"`
	EditalAreasCulturais   []string       `json:"edital_areas_culturais"`
	EditalConfiguracao     datatypes.JSON `json:"edital_configuracao"`
	EditalInscricaoDataFim *time.Time     `json:"edital_inscricao_data_fim"`
}

// 🔹 Request de atualização parcial
type EditalUpdateRequest struct {
	EditalTitulo           *string        `json:"edital_titulo" validate:"omitempty,max=255"`
	EditalDescricao        *string        `json:"edital_descricao"`
	EditalAreasCulturais   []string       `json:"edital_areas_culturais"`
	EditalConfiguracao     datatypes.JSON `json:"edital_configuracao"`
	EditalInscricaoDataFim *time.Time     `json:"edital_inscricao_data_fim"`
}

// 🔹 Response de edital
type EditalResponse struct {
	EditalID               uuid.UUID      `json:"edital_id"`
	EditalNumero           string         `json:"edital_numero"`
	EditalTitulo           string         `json:"edital_titulo"`
	EditalDescricao        string         `json:"edital_descricao"`
	EditalStatus           string         `json:"edital_status"`
	EditalStatusLabel      string         `json:"edital_status_label"`
	EditalPrefeituraID     uuid.UUID      `json:"edital_prefeitura_id"`
	EditalAtivo            bool           `json:"edital_ativo"`
	EditalVersao           int            `json:"edital_versao"`
	EditalAreasCulturais   []string       `json:"edital_areas_culturais"`
	EditalConfiguracao     datatypes.JSON `json:"edital_configuracao,omitempty"`
	EditalInscricaoDataFim *time.Time     `json:"edital_inscricao_data_fim,omitempty"`
	EditalCreatedAt        string         `json:"edital_created_at"`
}

// 🔄 Conversão request → model (edital nasce em `criacao`)
func (r *EditalRequest) ToModel(prefeituraID uuid.UUID) *model.EditalModel {
	return &model.EditalModel{
		EditalNumero:           r.EditalNumero,
		EditalTitulo:           r.EditalTitulo,
		EditalDescricao:        r.EditalDescricao,
		EditalStatus:           service.FaseCriacao,
		EditalPrefeituraID:     prefeituraID,
		EditalAtivo:            true,
		EditalVersao:           1,
		EditalAreasCulturais:   pq.StringArray(r.EditalAreasCulturais),
		EditalConfiguracao:     r.EditalConfiguracao,
		EditalInscricaoDataFim: r.EditalInscricaoDataFim,
	}
}

// 🔄 Conversão model → response
func ToEditalResponse(m *model.EditalModel) *EditalResponse {
	return &EditalResponse{
		EditalID:               m.EditalID,
		EditalNumero:           m.EditalNumero,
		EditalTitulo:           m.EditalTitulo,
		EditalDescricao:        m.EditalDescricao,
		EditalStatus:           m.EditalStatus,
		EditalStatusLabel:      service.FaseLabels[m.EditalStatus],
		EditalPrefeituraID:     m.EditalPrefeituraID,
		EditalAtivo:            m.EditalAtivo,
		EditalVersao:           m.EditalVersao,
		EditalAreasCulturais:   m.EditalAreasCulturais,
		EditalConfiguracao:     m.EditalConfiguracao,
		EditalInscricaoDataFim: m.EditalInscricaoDataFim,
		EditalCreatedAt:        m.EditalCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEditalResponseList(models []model.EditalModel) []EditalResponse {
	var result []EditalResponse
	for _, m := range models {
		result = append(result, *ToEditalResponse(&m))
	}
	return result
}
