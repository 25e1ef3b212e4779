package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AvaliacaoEmAndamento = "em_andamento"
	AvaliacaoFinalizada  = "finalizada"
	AvaliacaoBloqueada   = "bloqueada"
)

// Avaliação técnica de um projeto por um parecerista. Depois de finalizada,
// a pontuação não é reaberta pelo núcleo do sistema.
type AvaliacaoModel struct {
	AvaliacaoID          uuid.UUID `gorm:"column:avaliacao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"avaliacao_id"`
	AvaliacaoProjetoID   uuid.UUID `gorm:"column:avaliacao_projeto_id;type:uuid;not null;index:idx_avaliacoes_projeto_id" json:"avaliacao_projeto_id"`
	AvaliacaoAvaliadorID uuid.UUID `gorm:"column:avaliacao_avaliador_id;type:uuid;not null;index:idx_avaliacoes_avaliador_id" json:"avaliacao_avaliador_id"`

	AvaliacaoPontuacaoTotal *float64 `gorm:"column:avaliacao_pontuacao_total;type:numeric" json:"avaliacao_pontuacao_total,omitempty"`
	AvaliacaoStatus         string   `gorm:"column:avaliacao_status;type:varchar(20);not null;default:'em_andamento'" json:"avaliacao_status"`

	// Notas por critério (pesos e valores), persistidas como jsonb
	AvaliacaoCriterios datatypes.JSON `gorm:"column:avaliacao_criterios;type:jsonb" json:"avaliacao_criterios,omitempty"`

	AvaliacaoCreatedAt time.Time `gorm:"column:avaliacao_created_at;type:timestamptz;autoCreateTime" json:"avaliacao_created_at"`
	AvaliacaoUpdatedAt time.Time `gorm:"column:avaliacao_updated_at;type:timestamptz;autoUpdateTime" json:"avaliacao_updated_at"`
}

func (AvaliacaoModel) TableName() string {
	return "avaliacoes"
}
