package model

import (
	"time"

	"github.com/google/uuid"
)

// Types de services consulaires (8 valeurs).
const (
	ServiceTypeVisa            = "VISA"
	ServiceTypeBirthAct        = "BIRTH_ACT_APPLICATION"
	ServiceTypeMarriageAct     = "MARRIAGE_ACT_APPLICATION"
	ServiceTypeDeathAct        = "DEATH_ACT_APPLICATION"
	ServiceTypeConsularCard    = "CONSULAR_CARD"
	ServiceTypeLaissezPasser   = "LAISSEZ_PASSER"
	ServiceTypePowerOfAttorney = "POWER_OF_ATTORNEY"
	ServiceTypeNationalityCert = "NATIONALITY_CERTIFICATE"
)

var AllServiceTypes = []string{
	ServiceTypeVisa,
	ServiceTypeBirthAct,
	ServiceTypeMarriageAct,
	ServiceTypeDeathAct,
	ServiceTypeConsularCard,
	ServiceTypeLaissezPasser,
	ServiceTypePowerOfAttorney,
	ServiceTypeNationalityCert,
}

func IsValidServiceType(tag string) bool {
	for _, t := range AllServiceTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// ServiceModel — entrée du catalogue : tag unique, libellé, tarif par défaut
// (FCFA) et indicateur de tarif variable (VISA uniquement en pratique).
type ServiceModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ServiceType     string    `gorm:"column:service_type;size:50;not null;uniqueIndex" json:"service_type"`
	Nom             string    `gorm:"column:nom;size:255;not null" json:"nom"`
	Description     string    `gorm:"column:description;type:text" json:"description"`
	DefaultPrice    int64     `gorm:"column:default_price;not null" json:"default_price"`
	IsVariablePrice bool      `gorm:"column:is_variable_price;not null;default:false" json:"is_variable_price"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}
