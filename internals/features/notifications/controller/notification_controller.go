package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/notifications/model"
	"ambassade_backend/internals/features/notifications/service"
	helper "ambassade_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /notifications — mes notifications, paginées
func (ctrl *NotificationController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	var notifs []model.NotificationModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notifs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	return helper.JsonList(c, "Notifications récupérées", notifs,
		helper.BuildPagination(total, paging, len(notifs)))
}

// 🟢 GET /notifications/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = false", userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helper.JsonOK(c, "Compteur récupéré", fiber.Map{"unread": count})
}

// 🟡 PUT /notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", c.Params("id"), userID).
		Update("read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification introuvable")
	}
	return helper.JsonUpdated(c, "Notification lue", nil)
}

// 🟡 PUT /notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = false", userID).
		Update("read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helper.JsonUpdated(c, "Toutes les notifications sont lues", nil)
}

// 🔌 GET /ws/notifications — canal temps réel (authentifié en amont)
func (ctrl *NotificationController) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		raw, _ := conn.Locals("user_id").(string)
		userID, err := uuid.Parse(raw)
		if err != nil {
			_ = conn.Close()
			return
		}

		h := service.GetHub()
		if h == nil {
			_ = conn.Close()
			return
		}
		h.Register(userID, conn)
		defer func() {
			h.Unregister(userID, conn)
			_ = conn.Close()
		}()

		// Boucle de lecture : on ne consomme que les ping/close du client.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				log.Printf("[INFO] WebSocket fermé pour %s", userID)
				return
			}
		}
	})
}

// UpgradeRequired garde l'endpoint WS : refuse les requêtes non-upgrade.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
