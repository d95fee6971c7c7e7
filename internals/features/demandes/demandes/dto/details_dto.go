package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"ambassade_backend/internals/features/demandes/demandes/model"
)

// Les blocs de détail arrivent du client avec des dates en chaîne
// ("2006-01-02" ou RFC3339) ; chaque builder normalise vers time.Time.

func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date invalide : %q (attendu AAAA-MM-JJ)", s)
}

func badDetail(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Champ %s : %v", field, err))
}

/* ==========================
   VISA
========================== */

type VisaDetailsPayload struct {
	PassportNumber     string  `json:"passport_number"      validate:"required"`
	PassportIssueDate  string  `json:"passport_issue_date"  validate:"required"`
	PassportExpiryDate string  `json:"passport_expiry_date" validate:"required"`
	DurationMonths     int     `json:"duration_months"      validate:"required,gt=0"`
	TravelReason       *string `json:"travel_reason"`
}

// ToModel dérive aussi la classe de visa : SHORT_STAY si ≤ 3 mois, sinon LONG_STAY.
func (p *VisaDetailsPayload) ToModel() (*model.VisaDetailsModel, error) {
	issue, err := ParseDate(p.PassportIssueDate)
	if err != nil {
		return nil, badDetail("passport_issue_date", err)
	}
	expiry, err := ParseDate(p.PassportExpiryDate)
	if err != nil {
		return nil, badDetail("passport_expiry_date", err)
	}

	visaType := model.VisaTypeShortStay
	if p.DurationMonths > 3 {
		visaType = model.VisaTypeLongStay
	}

	return &model.VisaDetailsModel{
		PassportNumber:     p.PassportNumber,
		PassportIssueDate:  issue,
		PassportExpiryDate: expiry,
		DurationMonths:     p.DurationMonths,
		VisaType:           visaType,
		TravelReason:       p.TravelReason,
	}, nil
}

/* ==========================
   Actes d'état civil
========================== */

type BirthActDetailsPayload struct {
	PersonFirstName  string `json:"person_first_name"  validate:"required"`
	PersonLastName   string `json:"person_last_name"   validate:"required"`
	PersonBirthDate  string `json:"person_birth_date"  validate:"required"`
	PersonBirthPlace string `json:"person_birth_place" validate:"required"`
	FatherName       string `json:"father_name"        validate:"required"`
	MotherName       string `json:"mother_name"        validate:"required"`
	ActType          string `json:"act_type"           validate:"required,oneof=COPIE_INTEGRALE EXTRAIT"`
	CopiesCount      int    `json:"copies_count"       validate:"omitempty,gte=1"`
}

func (p *BirthActDetailsPayload) ToModel() (*model.BirthActDetailsModel, error) {
	birth, err := ParseDate(p.PersonBirthDate)
	if err != nil {
		return nil, badDetail("person_birth_date", err)
	}
	copies := p.CopiesCount
	if copies < 1 {
		copies = 1
	}
	return &model.BirthActDetailsModel{
		PersonFirstName:  p.PersonFirstName,
		PersonLastName:   p.PersonLastName,
		PersonBirthDate:  birth,
		PersonBirthPlace: p.PersonBirthPlace,
		FatherName:       p.FatherName,
		MotherName:       p.MotherName,
		ActType:          p.ActType,
		CopiesCount:      copies,
	}, nil
}

type MarriageActDetailsPayload struct {
	Spouse1Name   string `json:"spouse1_name"   validate:"required"`
	Spouse2Name   string `json:"spouse2_name"   validate:"required"`
	MarriageDate  string `json:"marriage_date"  validate:"required"`
	MarriagePlace string `json:"marriage_place" validate:"required"`
	ActType       string `json:"act_type"       validate:"required,oneof=COPIE_INTEGRALE EXTRAIT"`
	CopiesCount   int    `json:"copies_count"   validate:"omitempty,gte=1"`
}

func (p *MarriageActDetailsPayload) ToModel() (*model.MarriageActDetailsModel, error) {
	date, err := ParseDate(p.MarriageDate)
	if err != nil {
		return nil, badDetail("marriage_date", err)
	}
	copies := p.CopiesCount
	if copies < 1 {
		copies = 1
	}
	return &model.MarriageActDetailsModel{
		Spouse1Name:   p.Spouse1Name,
		Spouse2Name:   p.Spouse2Name,
		MarriageDate:  date,
		MarriagePlace: p.MarriagePlace,
		ActType:       p.ActType,
		CopiesCount:   copies,
	}, nil
}

type DeathActDetailsPayload struct {
	DeceasedName string `json:"deceased_name" validate:"required"`
	DeathDate    string `json:"death_date"    validate:"required"`
	DeathPlace   string `json:"death_place"   validate:"required"`
	ActType      string `json:"act_type"      validate:"required,oneof=COPIE_INTEGRALE EXTRAIT"`
	CopiesCount  int    `json:"copies_count"  validate:"omitempty,gte=1"`
}

func (p *DeathActDetailsPayload) ToModel() (*model.DeathActDetailsModel, error) {
	date, err := ParseDate(p.DeathDate)
	if err != nil {
		return nil, badDetail("death_date", err)
	}
	copies := p.CopiesCount
	if copies < 1 {
		copies = 1
	}
	return &model.DeathActDetailsModel{
		DeceasedName: p.DeceasedName,
		DeathDate:    date,
		DeathPlace:   p.DeathPlace,
		ActType:      p.ActType,
		CopiesCount:  copies,
	}, nil
}

/* ==========================
   Carte consulaire
========================== */

type ConsularCardDetailsPayload struct {
	Profession string `json:"profession"  validate:"required"`
	Address    string `json:"address"     validate:"required"`
	BirthDate  string `json:"birth_date"  validate:"required"`
	BirthPlace string `json:"birth_place" validate:"required"`
}

func (p *ConsularCardDetailsPayload) ToModel() (*model.ConsularCardDetailsModel, error) {
	birth, err := ParseDate(p.BirthDate)
	if err != nil {
		return nil, badDetail("birth_date", err)
	}
	return &model.ConsularCardDetailsModel{
		Profession: p.Profession,
		Address:    p.Address,
		BirthDate:  birth,
		BirthPlace: p.BirthPlace,
	}, nil
}

/* ==========================
   Laissez-passer
========================== */

type AccompagnateurPayload struct {
	Nom       string `json:"nom"        validate:"required"`
	Prenom    string `json:"prenom"     validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
}

type LaissezPasserDetailsPayload struct {
	TravelerName string  `json:"traveler_name" validate:"required"`
	BirthDate    string  `json:"birth_date"    validate:"required"`
	Destination  string  `json:"destination"   validate:"required"`
	TravelReason *string `json:"travel_reason"`
	Accompanied  bool    `json:"accompanied"`

	// Peut arriver déjà parsé ou comme chaîne JSON ; normalisé dans ToModel.
	Accompagnateurs json.RawMessage `json:"accompagnateurs"`
}

func (p *LaissezPasserDetailsPayload) ToModel() (*model.LaissezPasserDetailsModel, error) {
	birth, err := ParseDate(p.BirthDate)
	if err != nil {
		return nil, badDetail("birth_date", err)
	}

	detail := &model.LaissezPasserDetailsModel{
		TravelerName: p.TravelerName,
		BirthDate:    birth,
		Destination:  p.Destination,
		TravelReason: p.TravelReason,
		Accompanied:  p.Accompanied,
	}

	// Sans accompagnateur déclaré, aucune ligne enfant n'est créée.
	if !p.Accompanied {
		return detail, nil
	}

	raw, err := NormalizeJSONBlock(p.Accompagnateurs)
	if err != nil || len(raw) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Liste des accompagnateurs manquante ou invalide")
	}
	var accs []AccompagnateurPayload
	if err := json.Unmarshal(raw, &accs); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Liste des accompagnateurs invalide")
	}
	for _, a := range accs {
		ab, err := ParseDate(a.BirthDate)
		if err != nil {
			return nil, badDetail("accompagnateurs.birth_date", err)
		}
		detail.Accompagnateurs = append(detail.Accompagnateurs, model.AccompagnateurModel{
			Nom:       a.Nom,
			Prenom:    a.Prenom,
			BirthDate: ab,
		})
	}
	return detail, nil
}

/* ==========================
   Procuration
========================== */

type PowerOfAttorneyDetailsPayload struct {
	PrincipalName    string  `json:"principal_name"    validate:"required"`
	PrincipalAddress string  `json:"principal_address" validate:"required"`
	AgentName        string  `json:"agent_name"        validate:"required"`
	AgentAddress     string  `json:"agent_address"     validate:"required"`
	Scope            string  `json:"scope"             validate:"required"`
	ValidUntil       *string `json:"valid_until"`
}

func (p *PowerOfAttorneyDetailsPayload) ToModel() (*model.PowerOfAttorneyDetailsModel, error) {
	detail := &model.PowerOfAttorneyDetailsModel{
		PrincipalName:    p.PrincipalName,
		PrincipalAddress: p.PrincipalAddress,
		AgentName:        p.AgentName,
		AgentAddress:     p.AgentAddress,
		Scope:            p.Scope,
	}
	if p.ValidUntil != nil && *p.ValidUntil != "" {
		until, err := ParseDate(*p.ValidUntil)
		if err != nil {
			return nil, badDetail("valid_until", err)
		}
		detail.ValidUntil = &until
	}
	return detail, nil
}

/* ==========================
   Certificat de nationalité
========================== */

type NationalityCertDetailsPayload struct {
	PersonFirstName string `json:"person_first_name" validate:"required"`
	PersonLastName  string `json:"person_last_name"  validate:"required"`
	BirthDate       string `json:"birth_date"        validate:"required"`
	BirthPlace      string `json:"birth_place"       validate:"required"`
	FatherName      string `json:"father_name"       validate:"required"`
	MotherName      string `json:"mother_name"       validate:"required"`
}

func (p *NationalityCertDetailsPayload) ToModel() (*model.NationalityCertDetailsModel, error) {
	birth, err := ParseDate(p.BirthDate)
	if err != nil {
		return nil, badDetail("birth_date", err)
	}
	return &model.NationalityCertDetailsModel{
		PersonFirstName: p.PersonFirstName,
		PersonLastName:  p.PersonLastName,
		BirthDate:       birth,
		BirthPlace:      p.BirthPlace,
		FatherName:      p.FatherName,
		MotherName:      p.MotherName,
	}, nil
}
