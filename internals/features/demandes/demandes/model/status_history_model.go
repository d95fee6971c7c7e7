package model

import (
	"time"

	"github.com/google/uuid"

	userModel "ambassade_backend/internals/features/users/user/model"
)

// StatusHistoryModel — journal d'audit en ajout seul : une ligne par
// transition de statut, jamais modifiée ni supprimée.
type StatusHistoryModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;index" json:"demande_id"`
	ChangerID uuid.UUID `gorm:"column:changer_id;type:uuid;not null" json:"changer_id"`

	OldStatus string    `gorm:"column:old_status;size:30;not null" json:"old_status"`
	NewStatus string    `gorm:"column:new_status;size:30;not null" json:"new_status"`
	Reason    *string   `gorm:"column:reason;type:text" json:"reason,omitempty"`
	ChangedAt time.Time `gorm:"column:changed_at;autoCreateTime" json:"changed_at"`

	Changer *userModel.UserModel `gorm:"foreignKey:ChangerID" json:"changer,omitempty"`
}

func (StatusHistoryModel) TableName() string {
	return "demande_status_history"
}
