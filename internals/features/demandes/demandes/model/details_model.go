package model

import (
	"time"

	"github.com/google/uuid"
)

// Classes de durée de visa, dérivées de la durée demandée.
const (
	VisaTypeShortStay = "SHORT_STAY" // ≤ 3 mois
	VisaTypeLongStay  = "LONG_STAY"  // > 3 mois
)

// Sous-types d'actes d'état civil.
const (
	ActTypeCopieIntegrale = "COPIE_INTEGRALE"
	ActTypeExtrait        = "EXTRAIT"
)

type VisaDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	PassportNumber     string    `gorm:"column:passport_number;size:50;not null" json:"passport_number"`
	PassportIssueDate  time.Time `gorm:"column:passport_issue_date;not null" json:"passport_issue_date"`
	PassportExpiryDate time.Time `gorm:"column:passport_expiry_date;not null" json:"passport_expiry_date"`
	DurationMonths     int       `gorm:"column:duration_months;not null" json:"duration_months"`
	VisaType           string    `gorm:"column:visa_type;size:20;not null" json:"visa_type"`
	TravelReason       *string   `gorm:"column:travel_reason;type:text" json:"travel_reason,omitempty"`
}

func (VisaDetailsModel) TableName() string { return "visa_details" }

type BirthActDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	PersonFirstName  string    `gorm:"column:person_first_name;size:100;not null" json:"person_first_name"`
	PersonLastName   string    `gorm:"column:person_last_name;size:100;not null" json:"person_last_name"`
	PersonBirthDate  time.Time `gorm:"column:person_birth_date;not null" json:"person_birth_date"`
	PersonBirthPlace string    `gorm:"column:person_birth_place;size:255;not null" json:"person_birth_place"`
	FatherName       string    `gorm:"column:father_name;size:200;not null" json:"father_name"`
	MotherName       string    `gorm:"column:mother_name;size:200;not null" json:"mother_name"`
	ActType          string    `gorm:"column:act_type;size:30;not null" json:"act_type"`
	CopiesCount      int       `gorm:"column:copies_count;not null;default:1" json:"copies_count"`
}

func (BirthActDetailsModel) TableName() string { return "birth_act_details" }

type MarriageActDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	Spouse1Name   string    `gorm:"column:spouse1_name;size:200;not null" json:"spouse1_name"`
	Spouse2Name   string    `gorm:"column:spouse2_name;size:200;not null" json:"spouse2_name"`
	MarriageDate  time.Time `gorm:"column:marriage_date;not null" json:"marriage_date"`
	MarriagePlace string    `gorm:"column:marriage_place;size:255;not null" json:"marriage_place"`
	ActType       string    `gorm:"column:act_type;size:30;not null" json:"act_type"`
	CopiesCount   int       `gorm:"column:copies_count;not null;default:1" json:"copies_count"`
}

func (MarriageActDetailsModel) TableName() string { return "marriage_act_details" }

type DeathActDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	DeceasedName string    `gorm:"column:deceased_name;size:200;not null" json:"deceased_name"`
	DeathDate    time.Time `gorm:"column:death_date;not null" json:"death_date"`
	DeathPlace   string    `gorm:"column:death_place;size:255;not null" json:"death_place"`
	ActType      string    `gorm:"column:act_type;size:30;not null" json:"act_type"`
	CopiesCount  int       `gorm:"column:copies_count;not null;default:1" json:"copies_count"`
}

func (DeathActDetailsModel) TableName() string { return "death_act_details" }

type ConsularCardDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	Profession string    `gorm:"column:profession;size:150;not null" json:"profession"`
	Address    string    `gorm:"column:address;size:255;not null" json:"address"`
	BirthDate  time.Time `gorm:"column:birth_date;not null" json:"birth_date"`
	BirthPlace string    `gorm:"column:birth_place;size:255;not null" json:"birth_place"`
}

func (ConsularCardDetailsModel) TableName() string { return "consular_card_details" }

type LaissezPasserDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	TravelerName string    `gorm:"column:traveler_name;size:200;not null" json:"traveler_name"`
	BirthDate    time.Time `gorm:"column:birth_date;not null" json:"birth_date"`
	Destination  string    `gorm:"column:destination;size:255;not null" json:"destination"`
	TravelReason *string   `gorm:"column:travel_reason;type:text" json:"travel_reason,omitempty"`
	Accompanied  bool      `gorm:"column:accompanied;not null;default:false" json:"accompanied"`

	Accompagnateurs []AccompagnateurModel `gorm:"foreignKey:LaissezPasserID" json:"accompagnateurs,omitempty"`
}

func (LaissezPasserDetailsModel) TableName() string { return "laissez_passer_details" }

// AccompagnateurModel — personne accompagnant un laissez-passer (0..n,
// uniquement si Accompanied est vrai).
type AccompagnateurModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LaissezPasserID uuid.UUID `gorm:"column:laissez_passer_id;type:uuid;not null;index" json:"laissez_passer_id"`

	Nom       string    `gorm:"column:nom;size:100;not null" json:"nom"`
	Prenom    string    `gorm:"column:prenom;size:100;not null" json:"prenom"`
	BirthDate time.Time `gorm:"column:birth_date;not null" json:"birth_date"`
}

func (AccompagnateurModel) TableName() string { return "laissez_passer_accompagnateurs" }

type PowerOfAttorneyDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	PrincipalName    string     `gorm:"column:principal_name;size:200;not null" json:"principal_name"`
	PrincipalAddress string     `gorm:"column:principal_address;size:255;not null" json:"principal_address"`
	AgentName        string     `gorm:"column:agent_name;size:200;not null" json:"agent_name"`
	AgentAddress     string     `gorm:"column:agent_address;size:255;not null" json:"agent_address"`
	Scope            string     `gorm:"column:scope;type:text;not null" json:"scope"`
	ValidUntil       *time.Time `gorm:"column:valid_until" json:"valid_until,omitempty"`
}

func (PowerOfAttorneyDetailsModel) TableName() string { return "power_of_attorney_details" }

type NationalityCertDetailsModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DemandeID uuid.UUID `gorm:"column:demande_id;type:uuid;not null;uniqueIndex" json:"demande_id"`

	PersonFirstName string    `gorm:"column:person_first_name;size:100;not null" json:"person_first_name"`
	PersonLastName  string    `gorm:"column:person_last_name;size:100;not null" json:"person_last_name"`
	BirthDate       time.Time `gorm:"column:birth_date;not null" json:"birth_date"`
	BirthPlace      string    `gorm:"column:birth_place;size:255;not null" json:"birth_place"`
	FatherName      string    `gorm:"column:father_name;size:200;not null" json:"father_name"`
	MotherName      string    `gorm:"column:mother_name;size:200;not null" json:"mother_name"`
}

func (NationalityCertDetailsModel) TableName() string { return "nationality_cert_details" }
