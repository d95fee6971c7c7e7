package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ambassade_backend/internals/features/users/user/model"
)

// Statuts du cycle de vie d'une demande. Statut initial : NEW.
// Workflow permissif : tout statut est atteignable depuis tout statut.
const (
	StatusNew         = "NEW"
	StatusInReview    = "IN_REVIEW"
	StatusPendingDocs = "PENDING_DOCS"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
	StatusReady       = "READY"
	StatusDelivered   = "DELIVERED"
)

var AllStatuses = []string{
	StatusNew, StatusInReview, StatusPendingDocs,
	StatusApproved, StatusRejected, StatusReady, StatusDelivered,
}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// DemandeModel — l'agrégat central. Exactement UNE des huit relations de
// détail est renseignée, et son type correspond à ServiceType.
type DemandeModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeurID  uuid.UUID `gorm:"column:demandeur_id;type:uuid;not null;index:idx_demandes_demandeur" json:"demandeur_id"`
	TicketNumber string    `gorm:"column:ticket_number;size:30;not null;uniqueIndex" json:"ticket_number"`
	ServiceType  string    `gorm:"column:service_type;size:50;not null;index" json:"service_type"`
	Status       string    `gorm:"column:status;size:30;not null;default:'NEW';index" json:"status"`
	Amount       int64     `gorm:"column:amount;not null" json:"amount"`
	Phone        *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	SubmittedAt  time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`

	// Orthographe héritée du schéma d'origine, conservée pour compatibilité.
	Paied   bool       `gorm:"column:paied;not null;default:false" json:"paied"`
	PaiedAt *time.Time `gorm:"column:paied_at" json:"paied_at,omitempty"`

	Observations *string `gorm:"column:observations;type:text" json:"observations,omitempty"`

	// Relations de détail (une seule non nulle, discriminée par ServiceType).
	VisaDetails            *VisaDetailsModel            `gorm:"foreignKey:DemandeID" json:"visa_details,omitempty"`
	BirthActDetails        *BirthActDetailsModel        `gorm:"foreignKey:DemandeID" json:"birth_act_details,omitempty"`
	MarriageActDetails     *MarriageActDetailsModel     `gorm:"foreignKey:DemandeID" json:"marriage_act_details,omitempty"`
	DeathActDetails        *DeathActDetailsModel        `gorm:"foreignKey:DemandeID" json:"death_act_details,omitempty"`
	ConsularCardDetails    *ConsularCardDetailsModel    `gorm:"foreignKey:DemandeID" json:"consular_card_details,omitempty"`
	LaissezPasserDetails   *LaissezPasserDetailsModel   `gorm:"foreignKey:DemandeID" json:"laissez_passer_details,omitempty"`
	PowerOfAttorneyDetails *PowerOfAttorneyDetailsModel `gorm:"foreignKey:DemandeID" json:"power_of_attorney_details,omitempty"`
	NationalityCertDetails *NationalityCertDetailsModel `gorm:"foreignKey:DemandeID" json:"nationality_cert_details,omitempty"`

	Documents     []DocumentModel      `gorm:"foreignKey:DemandeID" json:"documents"`
	StatusHistory []StatusHistoryModel `gorm:"foreignKey:DemandeID" json:"status_history,omitempty"`

	Demandeur *userModel.UserModel `gorm:"foreignKey:DemandeurID" json:"demandeur,omitempty"`
}

func (DemandeModel) TableName() string {
	return "demandes"
}

// AfterFind garantit que les pièces jointes sérialisent en liste vide
// plutôt qu'en null quand la demande n'en a aucune.
func (d *DemandeModel) AfterFind(*gorm.DB) error {
	if d.Documents == nil {
		d.Documents = []DocumentModel{}
	}
	return nil
}

// DetailRelations liste les huit relations pour les Preload groupés.
var DetailRelations = []string{
	"VisaDetails",
	"BirthActDetails",
	"MarriageActDetails",
	"DeathActDetails",
	"ConsularCardDetails",
	"LaissezPasserDetails",
	"LaissezPasserDetails.Accompagnateurs",
	"PowerOfAttorneyDetails",
	"NationalityCertDetails",
}
