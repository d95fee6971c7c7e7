package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/notifications/controller"
)

// Montées sous un groupe déjà authentifié (demandeur ou personnel).
func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifs := api.Group("/notifications")
	notifs.Get("/", ctrl.GetMine)
	notifs.Get("/unread-count", ctrl.UnreadCount)
	notifs.Put("/read-all", ctrl.MarkAllRead)
	notifs.Put("/:id/read", ctrl.MarkRead)

	api.Use("/ws/notifications", controller.UpgradeRequired)
	api.Get("/ws/notifications", ctrl.WebsocketHandler())
}
