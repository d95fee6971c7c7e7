package dto

import (
	"bytes"
	"encoding/json"

	"ambassade_backend/internals/features/demandes/demandes/model"
)

// CreateDemandeRequest — enveloppe commune de création. Le bloc `details`
// transporte la charge propre au type de service ; il peut arriver comme
// objet JSON ou comme chaîne JSON (formulaires multipart), et il est
// normalisé UNE SEULE FOIS avant le dispatch par type.
type CreateDemandeRequest struct {
	ServiceType  string          `json:"service_type" form:"service_type" validate:"required"`
	Phone        *string         `json:"phone"        form:"phone"`
	Observations *string         `json:"observations" form:"observations"`
	Details      json.RawMessage `json:"details"      form:"details"`
}

// NormalizeJSONBlock accepte un bloc JSON déjà parsé ("{...}" / "[...]") ou
// encodé comme chaîne JSON ("\"{...}\"") et renvoie le JSON brut sous-jacent.
func NormalizeJSONBlock(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, err
	}
	return json.RawMessage(inner), nil
}

type UpdateStatusRequest struct {
	Status       string  `json:"status"       validate:"required"`
	Reason       *string `json:"reason"`
	Observations *string `json:"observations"`
}

// Filtres de listing (staff) ; tous optionnels.
type DemandeFilter struct {
	Status      string `query:"status"`
	ServiceType string `query:"service_type"`
	UserID      string `query:"user_id"`
	Ticket      string `query:"ticket"`
	DateFrom    string `query:"date_from"`
	DateTo      string `query:"date_to"`
}

type CreatedResponse struct {
	Message      string              `json:"message"`
	TicketNumber string              `json:"ticket_number"`
	Demande      *model.DemandeModel `json:"demande"`
}

// TrackResponse — suivi public par ticket, volontairement minimal.
type TrackResponse struct {
	TicketNumber string  `json:"ticket_number"`
	ServiceType  string  `json:"service_type"`
	Status       string  `json:"status"`
	Paied        bool    `json:"paied"`
	Observations *string `json:"observations,omitempty"`
}

func ToTrackResponse(d *model.DemandeModel) *TrackResponse {
	return &TrackResponse{
		TicketNumber: d.TicketNumber,
		ServiceType:  d.ServiceType,
		Status:       d.Status,
		Paied:        d.Paied,
		Observations: d.Observations,
	}
}

// StatsResponse — comptages pour les tableaux de bord.
type StatsResponse struct {
	ByStatus      map[string]int64 `json:"by_status"`
	ByServiceType map[string]int64 `json:"by_service_type"`
	Total         int64            `json:"total"`
}

type StatsRow struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}
