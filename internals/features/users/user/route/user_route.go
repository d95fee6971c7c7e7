package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/users/user/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

// Routes partagées (profil courant), montées sous /api/u et /api/a.
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	api.Get("/me", ctrl.Me)
	api.Put("/me", ctrl.UpdateMe)
}

// Gestion des comptes, réservée à l'ADMIN.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	users := api.Group("/users", authMw.RequireRoles(constants.RoleAdmin))
	users.Post("/", ctrl.CreateStaff)
	users.Get("/", ctrl.GetAll)
	users.Put("/:id", ctrl.UpdateStaff)
	users.Delete("/:id", ctrl.SoftDelete)
}
