package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/features/users/auth/dto"
	"editalize_backend/internals/features/users/auth/model"
	"editalize_backend/internals/features/users/auth/service"
	helper "editalize_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		log.Printf("[ERROR] Falha ao buscar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	if !user.UserAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada")
	}

	if !service.CheckPassword(user.UserSenha, req.Senha) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := service.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] Falha ao gerar token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar token")
	}

	return helper.JsonOK(c, "Login realizado com sucesso", dto.LoginResponse{
		AccessToken:  token,
		UserID:       user.UserID,
		UserNome:     user.UserNome,
		UserRole:     user.UserRole,
		PrefeituraID: user.UserPrefeituraID,
	})
}

// 🟢 POST /api/auth/logout — coloca o token atual na blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}
	raw := strings.TrimSpace(authz[7:])

	entry := model.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: time.Now().Add(12 * time.Hour),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Falha ao revogar token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao encerrar sessão")
	}

	return helper.JsonOK(c, "Sessão encerrada", nil)
}
