package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID uuid.UUID      `gorm:"column:recipient_id;type:uuid;not null;index" json:"recipient_id"`
	Title       string         `gorm:"column:title;size:255;not null" json:"title"`
	Body        string         `gorm:"column:body;type:text;not null" json:"body"`
	Event       string         `gorm:"column:event;size:100;not null" json:"event"`
	Data        datatypes.JSON `gorm:"column:data;type:jsonb" json:"data,omitempty"`
	Read        bool           `gorm:"column:read;not null;default:false" json:"read"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
