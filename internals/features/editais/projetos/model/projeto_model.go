package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	HabilitacaoPendente    = "pendente"
	HabilitacaoHabilitado  = "habilitado"
	HabilitacaoInabilitado = "inabilitado"
)

type ProjetoModel struct {
	ProjetoID           uuid.UUID `gorm:"column:projeto_id;type:uuid;default:gen_random_uuid();primaryKey" json:"projeto_id"`
	ProjetoEditalID     uuid.UUID `gorm:"column:projeto_edital_id;type:uuid;not null;index:idx_projetos_edital_id" json:"projeto_edital_id"`
	ProjetoProponenteID uuid.UUID `gorm:"column:projeto_proponente_id;type:uuid;not null;index:idx_projetos_proponente_id" json:"projeto_proponente_id"`
	ProjetoTitulo       string    `gorm:"column:projeto_titulo;type:varchar(255);not null" json:"projeto_titulo"`

	ProjetoStatusHabilitacao string `gorm:"column:projeto_status_habilitacao;type:varchar(20);not null;default:'pendente'" json:"projeto_status_habilitacao"`

	// Nota consolidada (média das avaliações finalizadas). Valor derivado:
	// recalculado sob demanda pelo serviço de ranking, nunca editado à mão.
	ProjetoNotaFinal *float64 `gorm:"column:projeto_nota_final;type:numeric" json:"projeto_nota_final,omitempty"`

	// Rótulo livre de ciclo de vida, usado só pela interface.
	ProjetoStatusAtual string `gorm:"column:projeto_status_atual;type:varchar(80)" json:"projeto_status_atual"`

	ProjetoDados datatypes.JSON `gorm:"column:projeto_dados;type:jsonb" json:"projeto_dados,omitempty"`

	ProjetoCreatedAt time.Time      `gorm:"column:projeto_created_at;type:timestamptz;autoCreateTime" json:"projeto_created_at"`
	ProjetoUpdatedAt time.Time      `gorm:"column:projeto_updated_at;type:timestamptz;autoUpdateTime" json:"projeto_updated_at"`
	ProjetoDeletedAt gorm.DeletedAt `gorm:"column:projeto_deleted_at;type:timestamptz;index"          json:"projeto_deleted_at,omitempty"`
}

func (ProjetoModel) TableName() string {
	return "projetos"
}
