package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svcModel "ambassade_backend/internals/features/demandes/services/model"
)

// GetTicketPrefix — table de correspondance type de service → préfixe court.
func GetTicketPrefix(serviceType string) string {
	switch serviceType {
	case svcModel.ServiceTypeVisa:
		return "VISA"
	case svcModel.ServiceTypeBirthAct:
		return "NAIS"
	case svcModel.ServiceTypeMarriageAct:
		return "MAR"
	case svcModel.ServiceTypeDeathAct:
		return "DEC"
	case svcModel.ServiceTypeConsularCard:
		return "CART"
	case svcModel.ServiceTypeLaissezPasser:
		return "LPAS"
	case svcModel.ServiceTypePowerOfAttorney:
		return "PROC"
	case svcModel.ServiceTypeNationalityCert:
		return "NAT"
	default:
		return "REQ"
	}
}

// FormatTicketNumber compose PREFIX_YYYYMMDD_NNNN.
func FormatTicketNumber(prefix, dayKey string, seq int64) string {
	return fmt.Sprintf("%s_%s_%04d", prefix, dayKey, seq)
}

// NextTicketNumber réserve le prochain numéro du jour via un upsert atomique
// sur ticket_counters. Appelé DANS la transaction de création : deux créations
// concurrentes ne peuvent pas obtenir la même séquence, et un rollback ne
// laisse aucun trou visible.
func NextTicketNumber(tx *gorm.DB, prefix string, now time.Time) (string, error) {
	dayKey := now.Format("20060102")

	var seq int64
	err := tx.Raw(`
		INSERT INTO ticket_counters (day, value) VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = ticket_counters.value + 1
		RETURNING value`, dayKey).Scan(&seq).Error
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de numérotation du ticket")
	}

	return FormatTicketNumber(prefix, dayKey, seq), nil
}
