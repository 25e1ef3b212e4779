package dto

import "github.com/google/uuid"

// 🔹 Request de login
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// 🔹 Response de login
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	UserID       uuid.UUID `json:"user_id"`
	UserNome     string    `json:"user_nome"`
	UserRole     string    `json:"user_role"`
	PrefeituraID uuid.UUID `json:"prefeitura_id"`
}
