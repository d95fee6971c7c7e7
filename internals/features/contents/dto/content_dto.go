package dto

import (
	"regexp"
	"strings"
)

// CreateActualiteRequest — multipart, la couverture arrive en fichier.
type CreateActualiteRequest struct {
	Title string `form:"title" json:"title" validate:"required,min=3,max=200"`
	Slug  string `form:"slug" json:"slug" validate:"omitempty,max=220"`
	Body  string `form:"body" json:"body" validate:"required,min=10"`
	Tags  string `form:"tags" json:"tags" validate:"omitempty,max=500"`
}

type UpdateActualiteRequest struct {
	Title     *string `form:"title" json:"title" validate:"omitempty,min=3,max=200"`
	Body      *string `form:"body" json:"body" validate:"omitempty,min=10"`
	Tags      *string `form:"tags" json:"tags" validate:"omitempty,max=500"`
	Published *bool   `form:"published" json:"published"`
}

type CreateEvenementRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Slug        string  `json:"slug" validate:"omitempty,max=220"`
	Description string  `json:"description" validate:"omitempty"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	StartsAt    string  `json:"starts_at" validate:"required"`
	EndsAt      *string `json:"ends_at" validate:"omitempty"`
}

type CreatePhotoRequest struct {
	Title string `form:"title" json:"title" validate:"required,min=3,max=200"`
}

type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	URL         string `json:"url" validate:"required,url,max=500"`
	Description string `json:"description" validate:"omitempty"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify dérive un slug URL-safe du titre quand aucun n'est fourni.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SplitTags découpe la liste de tags envoyée en formulaire ("a, b ,c").
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
