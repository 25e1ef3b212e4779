package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/features/users/auth/controller"
	"editalize_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/logout", authCtrl.Logout)
}
