package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/paiements/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

// PaiementPublicRoutes — flux passerelle : la vérification Kkiapay fait
// office d'authentification, pas de session requise.
func PaiementPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaiementController(db)
	router.Post("/paiements/pay", ctrl.PayKkiapay)
}

// PaiementAdminRoutes — gestion des encaissements, réservée à la finance.
func PaiementAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaiementController(db)

	paiements := router.Group("/paiements",
		authMw.RequireRoles(constants.FinanceRoles...))
	paiements.Post("/", ctrl.Create)
	paiements.Get("/", ctrl.GetAll)
	paiements.Delete("/:id", ctrl.Delete)
}
