package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ActualiteModel — article d'actualité publié par l'ambassade.
type ActualiteModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string         `gorm:"column:title;size:200;not null" json:"title"`
	Slug      string         `gorm:"column:slug;size:220;not null;uniqueIndex" json:"slug"`
	Body      string         `gorm:"column:body;type:text;not null" json:"body"`
	CoverPath *string        `gorm:"column:cover_path;size:255" json:"cover_path,omitempty"`
	Tags      pq.StringArray `gorm:"column:tags;type:text[]" json:"tags,omitempty"`
	Published bool           `gorm:"column:published;not null;default:true" json:"published"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ActualiteModel) TableName() string {
	return "actualites"
}

// EvenementModel — événement consulaire (journée portes ouvertes, fête
// nationale, collecte biométrique itinérante).
type EvenementModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"column:title;size:200;not null" json:"title"`
	Slug        string     `gorm:"column:slug;size:220;not null;uniqueIndex" json:"slug"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Location    string     `gorm:"column:location;size:200" json:"location"`
	StartsAt    time.Time  `gorm:"column:starts_at;not null" json:"starts_at"`
	EndsAt      *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EvenementModel) TableName() string {
	return "evenements"
}

// PhotoModel — photo de la galerie, stockée en webp avec sa miniature.
type PhotoModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"column:title;size:200;not null" json:"title"`
	ImagePath string    `gorm:"column:image_path;size:255;not null" json:"image_path"`
	ThumbPath string    `gorm:"column:thumb_path;size:255;not null" json:"thumb_path"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PhotoModel) TableName() string {
	return "photos"
}

// VideoModel — vidéo référencée par URL (YouTube, etc.) ou hébergée.
type VideoModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"column:title;size:200;not null" json:"title"`
	URL         string    `gorm:"column:url;size:500;not null" json:"url"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}
