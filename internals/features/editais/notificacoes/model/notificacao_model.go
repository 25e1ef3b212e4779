package model

import (
	"time"

	"github.com/google/uuid"
)

// Notificação in-app. Gravada pelo fan-out de mudança de fase;
// entrega é best-effort.
type NotificacaoModel struct {
	NotificacaoID           uuid.UUID `gorm:"column:notificacao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notificacao_id"`
	NotificacaoUserID       uuid.UUID `gorm:"column:notificacao_user_id;type:uuid;not null;index:idx_notificacoes_user_id" json:"notificacao_user_id"`
	NotificacaoPrefeituraID uuid.UUID `gorm:"column:notificacao_prefeitura_id;type:uuid;not null" json:"notificacao_prefeitura_id"`
	NotificacaoTitulo       string    `gorm:"column:notificacao_titulo;type:varchar(255);not null" json:"notificacao_titulo"`
	NotificacaoMensagem     string    `gorm:"column:notificacao_mensagem;type:text;not null"       json:"notificacao_mensagem"`
	NotificacaoLida         bool      `gorm:"column:notificacao_lida;not null;default:false"       json:"notificacao_lida"`

	NotificacaoCreatedAt time.Time `gorm:"column:notificacao_created_at;type:timestamptz;autoCreateTime" json:"notificacao_created_at"`
}

func (NotificacaoModel) TableName() string {
	return "notificacoes"
}
