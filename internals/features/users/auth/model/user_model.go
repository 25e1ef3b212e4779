package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserNome         string         `gorm:"column:user_nome;type:varchar(120);not null"                   json:"user_nome"`
	UserEmail        string         `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"      json:"user_email"`
	UserSenha        string         `gorm:"column:user_senha;type:varchar(255);not null"                  json:"-"`
	UserRole         string         `gorm:"column:user_role;type:varchar(30);not null;default:'proponente'" json:"user_role"`
	UserPrefeituraID uuid.UUID      `gorm:"column:user_prefeitura_id;type:uuid;not null;index:idx_users_prefeitura_id" json:"user_prefeitura_id"`
	UserAtivo        bool           `gorm:"column:user_ativo;not null;default:true"                       json:"user_ativo"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
