package dto

import (
	"time"

	"github.com/google/uuid"

	"ambassade_backend/internals/features/paiements/model"
)

// CreatePaiementRequest — enregistrement manuel par le personnel.
type CreatePaiementRequest struct {
	Amount      int64   `json:"amount" validate:"required,gt=0"`
	Method      string  `json:"method" validate:"required"`
	Ticket      *string `json:"ticket" validate:"omitempty,min=3"`
	Source      *string `json:"source" validate:"omitempty,max=100"`
	PaymentDate *string `json:"payment_date" validate:"omitempty"`
}

// PayKkiapayRequest — flux passerelle : le demandeur a déjà payé côté
// Kkiapay, on vérifie la transaction avant d'enregistrer quoi que ce soit.
type PayKkiapayRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,min=3,max=100"`
	Ticket        string `json:"ticket" validate:"required,min=3"`
}

type PaiementFilter struct {
	Ticket   string `query:"ticket"`
	Method   string `query:"method"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}

type PaiementResponse struct {
	ID            uuid.UUID  `json:"id"`
	Amount        int64      `json:"amount"`
	Method        string     `json:"method"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	Source        *string    `json:"source,omitempty"`
	PaymentDate   time.Time  `json:"payment_date"`
	Ticket        *string    `json:"ticket,omitempty"`
	DemandeID     *uuid.UUID `json:"demande_id,omitempty"`
	RecorderName  *string    `json:"recorder_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToPaiementResponse(m *model.PaiementModel) PaiementResponse {
	resp := PaiementResponse{
		ID:            m.ID,
		Amount:        m.Amount,
		Method:        m.Method,
		TransactionID: m.TransactionID,
		Source:        m.Source,
		PaymentDate:   m.PaymentDate,
		DemandeID:     m.DemandeID,
		CreatedAt:     m.CreatedAt,
	}
	if m.Demande != nil {
		resp.Ticket = &m.Demande.TicketNumber
	}
	if m.Recorder != nil {
		full := m.Recorder.Prenom + " " + m.Recorder.Nom
		resp.RecorderName = &full
	}
	return resp
}

func ToPaiementResponseList(list []model.PaiementModel) []PaiementResponse {
	out := make([]PaiementResponse, 0, len(list))
	for i := range list {
		out = append(out, ToPaiementResponse(&list[i]))
	}
	return out
}
