package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/contents/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

// ContentPublicRoutes — vitrine, lecture seule sans authentification.
func ContentPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	router.Get("/actualites", ctrl.GetActualites)
	router.Get("/actualites/:slug", ctrl.GetActualiteBySlug)
	router.Get("/evenements", ctrl.GetEvenements)
	router.Get("/evenements/:slug", ctrl.GetEvenementBySlug)
	router.Get("/photos", ctrl.GetPhotos)
	router.Get("/videos", ctrl.GetVideos)
	router.Get("/videos/:id", ctrl.GetVideoByID)
}

// ContentAdminRoutes — écritures réservées à l'administrateur.
func ContentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	contents := router.Group("/contents",
		authMw.RequireRoles(constants.RoleAdmin))
	contents.Post("/actualites", ctrl.CreateActualite)
	contents.Put("/actualites/:id", ctrl.UpdateActualite)
	contents.Delete("/actualites/:id", ctrl.DeleteActualite)
	contents.Post("/evenements", ctrl.CreateEvenement)
	contents.Delete("/evenements/:id", ctrl.DeleteEvenement)
	contents.Post("/photos", ctrl.CreatePhoto)
	contents.Delete("/photos/:id", ctrl.DeletePhoto)
	contents.Post("/videos", ctrl.CreateVideo)
	contents.Delete("/videos/:id", ctrl.DeleteVideo)
}
