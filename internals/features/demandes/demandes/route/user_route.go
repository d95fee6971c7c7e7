package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/demandes/demandes/controller"
)

// Espace demandeur (déjà authentifié en amont).
func DemandeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDemandeController(db)

	demandes := api.Group("/demandes")
	demandes.Post("/", ctrl.Create)
	demandes.Get("/mes-demandes", ctrl.GetMine)
	demandes.Get("/stats", ctrl.GetMyStats)
	demandes.Get("/track/:ticket", ctrl.TrackByTicket)
	demandes.Get("/:id", ctrl.FindOne)
}
