package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/demandes/demandes/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

// Espace personnel : tout rôle authentifié consulte, la liste blanche
// StatusUpdateRoles gouverne le changement de statut.
func DemandeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDemandeController(db)

	demandes := api.Group("/demandes")
	demandes.Get("/", ctrl.GetAllFiltered)
	demandes.Get("/stats", ctrl.GetStats)
	demandes.Get("/:id", ctrl.FindOne)
	demandes.Put("/:id/status",
		authMw.RequireRoles(constants.StatusUpdateRoles...),
		ctrl.UpdateStatus)
}
