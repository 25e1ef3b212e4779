package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/controller"
	"editalize_backend/internals/features/editais/editais/service"
	notifService "editalize_backend/internals/features/editais/notificacoes/service"
)

// Endpoints acionados pelo trigger externo de tempo. O endpoint de fases é
// protegido na borda da rede; o de inscrições exige o CRON_SECRET.
func CronRoutes(cron fiber.Router, db *gorm.DB) {
	store := service.NewGormEditalStore(db)
	transition := service.NewTransitionService(store, notifService.NewNotificationService(db))

	cronCtrl := controller.NewCronController(
		service.NewFaseLockerService(store, transition),
		service.NewInscricaoLockerService(store),
	)

	cron.Post("/fases/bloquear", cronCtrl.BloquearFasesVencidas)
	cron.Post("/inscricoes/encerrar", cronCtrl.EncerrarInscricoesVencidas)
}
