// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/constants"
	authMiddleware "editalize_backend/internals/middlewares/auth"
	routeDetails "editalize_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== CRON =====================
	log.Println("[INFO] Setting up CRON group...")
	cron := app.Group("/api/cron")
	routeDetails.CronRoutes(cron, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			"❌ Papel não reconhecido pelo portal.",
			constants.AllRoles,
		),
	)
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorGestao("a gestão de editais"),
			constants.GestaoEditais,
		),
	)
	routeDetails.EditalAdminRoutes(admin, db)
}
