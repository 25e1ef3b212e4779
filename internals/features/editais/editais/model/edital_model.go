package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EditalModel struct {
	EditalID           uuid.UUID      `gorm:"column:edital_id;type:uuid;default:gen_random_uuid();primaryKey" json:"edital_id"`
	EditalNumero       string         `gorm:"column:edital_numero;type:varchar(50);not null"                  json:"edital_numero"`
	EditalTitulo       string         `gorm:"column:edital_titulo;type:varchar(255);not null"                 json:"edital_titulo"`
	EditalDescricao    string         `gorm:"column:edital_descricao;type:text"                                json:"edital_descricao"`

	// Fase atual do edital. Sempre um dos 16 valores do catálogo de fases.
	EditalStatus string `gorm:"column:edital_status;type:varchar(40);not null;default:'criacao';index:idx_editais_status" json:"edital_status"`

	EditalPrefeituraID uuid.UUID      `gorm:"column:edital_prefeitura_id;type:uuid;not null;index:idx_editais_prefeitura_id" json:"edital_prefeitura_id"`
	EditalAtivo        bool           `gorm:"column:edital_ativo;not null;default:true"                       json:"edital_ativo"`
	EditalVersao       int            `gorm:"column:edital_versao;not null;default:1"                         json:"edital_versao"`

	EditalAreasCulturais pq.StringArray `gorm:"column:edital_areas_culturais;type:text[]" json:"edital_areas_culturais"`
	EditalConfiguracao   datatypes.JSON `gorm:"column:edital_configuracao;type:jsonb"     json:"edital_configuracao,omitempty"`

	// Prazo final de inscrição; usado pelo job de encerramento automático.
	EditalInscricaoDataFim *time.Time `gorm:"column:edital_inscricao_data_fim;type:timestamptz" json:"edital_inscricao_data_fim,omitempty"`

	EditalCreatedAt time.Time      `gorm:"column:edital_created_at;type:timestamptz;autoCreateTime" json:"edital_created_at"`
	EditalUpdatedAt time.Time      `gorm:"column:edital_updated_at;type:timestamptz;autoUpdateTime" json:"edital_updated_at"`
	EditalDeletedAt gorm.DeletedAt `gorm:"column:edital_deleted_at;type:timestamptz;index"          json:"edital_deleted_at,omitempty"`
}

func (EditalModel) TableName() string {
	return "editais"
}
