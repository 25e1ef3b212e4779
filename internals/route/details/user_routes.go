package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"editalize_backend/internals/constants"
	avaliacaoController "editalize_backend/internals/features/editais/avaliacoes/controller"
	notifController "editalize_backend/internals/features/editais/notificacoes/controller"
	projetoController "editalize_backend/internals/features/editais/projetos/controller"
	authMiddleware "editalize_backend/internals/middlewares/auth"
)

// Rotas autenticadas de proponentes e pareceristas.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	// ---------- Projetos (proponente) ----------
	projCtrl := projetoController.NewProjetoController(db)
	projetos := user.Group("/projetos",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorProponente("os projetos"),
			constants.ProponenteOnly,
		),
	)
	projetos.Post("/", projCtrl.CreateProjeto)
	projetos.Get("/meus", projCtrl.GetMeusProjetos)

	// ---------- Avaliações (parecerista) ----------
	avalCtrl := avaliacaoController.NewAvaliacaoController(db)
	avaliacoes := user.Group("/avaliacoes",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorParecerista("as avaliações"),
			constants.PareceristaOnly,
		),
	)
	avaliacoes.Get("/minhas", avalCtrl.GetMinhasAvaliacoes)
	avaliacoes.Patch("/:id", avalCtrl.UpdateAvaliacao)
	avaliacoes.Post("/:id/finalizar", avalCtrl.FinalizarAvaliacao)

	// ---------- Notificações ----------
	notifCtrl := notifController.NewNotificacaoController(db)
	notificacoes := user.Group("/notificacoes")
	notificacoes.Get("/", notifCtrl.GetMinhasNotificacoes)
	notificacoes.Patch("/:id/lida", notifCtrl.MarcarComoLida)
}
