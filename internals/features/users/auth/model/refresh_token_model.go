package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel stocke le hash du refresh token (jamais le jeton en clair).
type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"column:token;size:128;not null;uniqueIndex" json:"-"`
	UserType  string     `gorm:"column:user_type;type:varchar(20);not null" json:"user_type"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"column:user_agent;size:255" json:"-"`
	IP        *string    `gorm:"column:ip;size:64" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
