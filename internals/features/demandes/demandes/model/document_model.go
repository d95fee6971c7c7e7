package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel — pièce jointe d'une demande, stockée sur le disque local.
type DocumentModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;index" json:"demande_id"`

	OriginalName string    `gorm:"column:original_name;size:255;not null" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type;size:100;not null" json:"mime_type"`
	StoredPath   string    `gorm:"column:stored_path;size:500;not null" json:"stored_path"`
	SizeKB       int64     `gorm:"column:size_kb;not null" json:"size_kb"`
	UploaderID   uuid.UUID `gorm:"column:uploader_id;type:uuid;not null" json:"uploader_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DocumentModel) TableName() string {
	return "demande_documents"
}
