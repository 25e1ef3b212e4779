package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/controller"
)

// Transparência: leitura pública, sem autenticação.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	publicCtrl := controller.NewEditalPublicController(db)
	public.Get("/editais", publicCtrl.ListEditaisPublicados)
}
