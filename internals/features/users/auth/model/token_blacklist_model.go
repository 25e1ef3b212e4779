package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tokens revogados via logout; limpos pelo scheduler após o TTL.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	Token            string    `gorm:"column:token;type:text;not null;index"      json:"token"`
	ExpiredAt        time.Time `gorm:"column:expired_at;type:timestamptz;not null" json:"expired_at"`

	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;type:timestamptz;index"          json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
