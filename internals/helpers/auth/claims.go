package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Chaves padronizadas em c.Locals (hidratadas pelo AuthMiddleware)
const (
	LocUserID       = "user_id"
	LocUserRole     = "user_role"
	LocPrefeituraID = "prefeitura_id"
)

// GetUserID lê o user_id do contexto. 401 se ausente/inválido.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	return id, nil
}

// GetPrefeituraID lê o tenant ativo do contexto. 401 se ausente/inválido.
// Todo acesso a dados DEVE filtrar por este id (isolamento de tenant).
func GetPrefeituraID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocPrefeituraID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Prefeitura não identificada no token")
	}
	return id, nil
}

// GetUserRole lê o papel do usuário do contexto.
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}
