package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	demandeModel "ambassade_backend/internals/features/demandes/demandes/model"
	userModel "ambassade_backend/internals/features/users/user/model"
)

// Moyens de paiement acceptés.
const (
	MethodCash         = "CASH"
	MethodMobileMoney  = "MOBILE_MONEY"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodCreditCard   = "CREDIT_CARD"
	MethodOther        = "OTHER"
)

var AllMethods = []string{
	MethodCash, MethodMobileMoney, MethodBankTransfer, MethodCreditCard, MethodOther,
}

func IsValidMethod(m string) bool {
	for _, v := range AllMethods {
		if v == m {
			return true
		}
	}
	return false
}

// PaiementModel — encaissement, lié optionnellement à une demande et au
// membre du personnel qui l'a enregistré.
type PaiementModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Amount int64     `gorm:"column:amount;not null" json:"amount"`
	Method string    `gorm:"column:method;size:30;not null" json:"method"`

	// Référence de transaction côté passerelle (Kkiapay) et sous-canal.
	TransactionID  *string        `gorm:"column:transaction_id;size:100;uniqueIndex" json:"transaction_id,omitempty"`
	Source         *string        `gorm:"column:source;size:100" json:"source,omitempty"`
	GatewayPayload datatypes.JSON `gorm:"column:gateway_payload;type:jsonb" json:"gateway_payload,omitempty"`

	PaymentDate time.Time `gorm:"column:payment_date;not null" json:"payment_date"`

	DemandeID  *uuid.UUID `gorm:"column:demande_id;type:uuid;index" json:"demande_id,omitempty"`
	RecorderID *uuid.UUID `gorm:"column:recorder_id;type:uuid" json:"recorder_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Demande  *demandeModel.DemandeModel `gorm:"foreignKey:DemandeID" json:"demande,omitempty"`
	Recorder *userModel.UserModel       `gorm:"foreignKey:RecorderID" json:"recorder,omitempty"`
}

func (PaiementModel) TableName() string {
	return "paiements"
}
