package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/demandes/services/model"
)

// Seuil court séjour : au-delà de 3 mois, le tarif visa double.
const VisaShortStayMaxMonths = 3

// CalculateAmount calcule le montant dû pour un type de service.
//   - service absent du catalogue → 404
//   - tarif fixe → tarif par défaut, quelle que soit la durée fournie
//   - VISA (variable) : durée requise ; ≤ 3 mois → 1× tarif, sinon 2×
//   - tout autre service à tarif variable sans règle dédiée → 400
func CalculateAmount(db *gorm.DB, serviceType string, durationMonths *int) (int64, error) {
	svc, err := FindByType(db, serviceType)
	if err != nil {
		return 0, err
	}

	if !svc.IsVariablePrice {
		return svc.DefaultPrice, nil
	}

	switch svc.ServiceType {
	case model.ServiceTypeVisa:
		if durationMonths == nil {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Veuillez préciser la durée du visa")
		}
		if *durationMonths <= VisaShortStayMaxMonths {
			return svc.DefaultPrice, nil
		}
		return 2 * svc.DefaultPrice, nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "Veuillez préciser la durée pour ce service")
	}
}

func FindByType(db *gorm.DB, serviceType string) (*model.ServiceModel, error) {
	var svc model.ServiceModel
	if err := db.Where("service_type = ?", serviceType).First(&svc).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service consulaire introuvable")
	}
	return &svc, nil
}
