package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	avaliacaoController "editalize_backend/internals/features/editais/avaliacoes/controller"
	avaliacaoService "editalize_backend/internals/features/editais/avaliacoes/service"
	"editalize_backend/internals/features/editais/editais/controller"
	"editalize_backend/internals/features/editais/editais/service"
	notifService "editalize_backend/internals/features/editais/notificacoes/service"
	projetoController "editalize_backend/internals/features/editais/projetos/controller"
)

// Rotas administrativas da gestão de editais (grupo já protegido por
// auth + papel de gestão).
func EditalAdminRoutes(admin fiber.Router, db *gorm.DB) {
	store := service.NewGormEditalStore(db)
	transition := service.NewTransitionService(store, notifService.NewNotificationService(db))

	// ---------- Editais ----------
	editalCtrl := controller.NewEditalController(db, transition)
	editais := admin.Group("/editais")
	editais.Post("/", editalCtrl.CreateEdital)
	editais.Get("/", editalCtrl.ListEditais)
	editais.Get("/:id", editalCtrl.GetEditalByID)
	editais.Patch("/:id", editalCtrl.UpdateEdital)
	editais.Post("/:id/avancar", editalCtrl.AvancarFase)

	// ---------- Janelas de fase ----------
	faseCtrl := controller.NewEditalFaseController(db)
	fases := admin.Group("/edital-fases")
	fases.Post("/", faseCtrl.CreateEditalFase)
	fases.Get("/by-edital/:edital_id", faseCtrl.GetFasesByEdital)
	fases.Patch("/:id", faseCtrl.UpdateEditalFase)

	// ---------- Projetos (visão administrativa) ----------
	projCtrl := projetoController.NewProjetoController(db)
	projetos := admin.Group("/projetos")
	projetos.Get("/by-edital/:edital_id", projCtrl.GetProjetosByEdital)
	projetos.Patch("/:id/habilitacao", projCtrl.UpdateHabilitacao)

	// ---------- Avaliações + consolidação ----------
	avalCtrl := avaliacaoController.NewAvaliacaoController(db)
	admin.Post("/avaliacoes", avalCtrl.CreateAvaliacao)

	rankingCtrl := avaliacaoController.NewRankingController(db,
		avaliacaoService.NewRankingService(avaliacaoService.NewGormRankingStore(db)))
	editais.Post("/:edital_id/consolidar-notas", rankingCtrl.ConsolidarNotas)
}
