package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpCode — code HOTP à 4 chiffres émis entre la vérification du mot de passe
// et la délivrance des jetons. Stocké haché, valable 5 minutes, usage unique.
type OtpCode struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	CodeHash  string     `gorm:"column:code_hash;size:128;not null" json:"-"`
	Counter   uint64     `gorm:"column:counter;not null" json:"-"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null;index" json:"expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OtpCode) TableName() string {
	return "otp_codes"
}
