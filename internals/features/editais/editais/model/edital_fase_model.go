package model

import (
	"time"

	"github.com/google/uuid"
)

// Janela agendada de uma fase do edital. Uma linha por (edital, fase).
// Depois que edital_fase_bloqueada vira true, nenhum processo automático
// volta o valor para false.
type EditalFaseModel struct {
	EditalFaseID       uuid.UUID  `gorm:"column:edital_fase_id;type:uuid;default:gen_random_uuid();primaryKey" json:"edital_fase_id"`
	EditalFaseEditalID uuid.UUID  `gorm:"column:edital_fase_edital_id;type:uuid;not null;index:idx_edital_fases_edital_id" json:"edital_fase_edital_id"`
	EditalFaseFase     string     `gorm:"column:edital_fase_fase;type:varchar(40);not null" json:"edital_fase_fase"`
	EditalFaseDataInicio *time.Time `gorm:"column:edital_fase_data_inicio;type:timestamptz" json:"edital_fase_data_inicio,omitempty"`
	EditalFaseDataFim    *time.Time `gorm:"column:edital_fase_data_fim;type:timestamptz"    json:"edital_fase_data_fim,omitempty"`
	EditalFaseBloqueada  bool       `gorm:"column:edital_fase_bloqueada;not null;default:false;index" json:"edital_fase_bloqueada"`
	EditalFaseObservacao string     `gorm:"column:edital_fase_observacao;type:text"         json:"edital_fase_observacao"`

	EditalFaseCreatedAt time.Time `gorm:"column:edital_fase_created_at;type:timestamptz;autoCreateTime" json:"edital_fase_created_at"`
	EditalFaseUpdatedAt time.Time `gorm:"column:edital_fase_updated_at;type:timestamptz;autoUpdateTime" json:"edital_fase_updated_at"`

	// NOTE:
	// - Unicidade (edital_id, fase) é criada via migration:
	//   CREATE UNIQUE INDEX ux_edital_fases_edital_fase ON edital_fases (edital_fase_edital_id, edital_fase_fase);
}

func (EditalFaseModel) TableName() string {
	return "edital_fases"
}
