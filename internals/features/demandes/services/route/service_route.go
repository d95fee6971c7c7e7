package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/demandes/services/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

func ServicePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewServiceController(db)
	services := api.Group("/services")
	services.Get("/", ctrl.GetAll)
	services.Get("/:type", ctrl.GetByType)
}

func ServiceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewServiceController(db)
	services := api.Group("/services", authMw.RequireRoles(constants.RoleAdmin))
	services.Post("/", ctrl.Create)
	services.Put("/:type", ctrl.Update)
	services.Delete("/:type", ctrl.Delete)
}
