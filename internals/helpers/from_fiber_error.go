package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte um erro (geralmente *fiber.Error vindo de
// Transaction) em resposta JSON consistente. Se não for *fiber.Error,
// cai para 500 com a mensagem original.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
