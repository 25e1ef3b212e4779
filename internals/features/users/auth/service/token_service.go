package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"editalize_backend/internals/configs"
	"editalize_backend/internals/features/users/auth/model"
)

const accessTokenTTL = 12 * time.Hour

// GenerateAccessToken emite o JWT com as claims esperadas pelo AuthMiddleware
// (id, role, prefeitura_id).
func GenerateAccessToken(user *model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET não configurado")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":            user.UserID.String(),
		"role":          user.UserRole,
		"prefeitura_id": user.UserPrefeituraID.String(),
		"iat":           now.Unix(),
		"exp":           now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
