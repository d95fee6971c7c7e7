package seeds

import (
	"log"

	"gorm.io/gorm"

	"ambassade_backend/internals/features/demandes/services/model"
)

type serviceSeed struct {
	Type          string
	Nom           string
	Description   string
	DefaultPrice  int64
	VariablePrice bool
}

var catalogSeeds = []serviceSeed{
	{model.ServiceTypeVisa, "Visa", "Visa d'entrée, tarif selon la durée du séjour", 25000, true},
	{model.ServiceTypeBirthAct, "Acte de naissance", "Copie intégrale ou extrait d'acte de naissance", 5000, false},
	{model.ServiceTypeMarriageAct, "Acte de mariage", "Copie intégrale ou extrait d'acte de mariage", 5000, false},
	{model.ServiceTypeDeathAct, "Acte de décès", "Copie intégrale ou extrait d'acte de décès", 5000, false},
	{model.ServiceTypeConsularCard, "Carte consulaire", "Carte d'immatriculation consulaire", 10000, false},
	{model.ServiceTypeLaissezPasser, "Laissez-passer", "Titre de voyage provisoire", 15000, false},
	{model.ServiceTypePowerOfAttorney, "Procuration", "Légalisation de procuration", 7500, false},
	{model.ServiceTypeNationalityCert, "Certificat de nationalité", "Attestation de nationalité", 7500, false},
}

// SeedServices insère le catalogue des services consulaires. Les lignes
// déjà présentes sont laissées telles quelles pour préserver les tarifs
// ajustés par l'administrateur.
func SeedServices(db *gorm.DB) {
	for _, s := range catalogSeeds {
		var existing model.ServiceModel
		if err := db.Where("service_type = ?", s.Type).First(&existing).Error; err == nil {
			continue
		}

		row := model.ServiceModel{
			ServiceType:     s.Type,
			Nom:             s.Nom,
			Description:     s.Description,
			DefaultPrice:    s.DefaultPrice,
			IsVariablePrice: s.VariablePrice,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Échec de l'insertion du service '%s': %v", s.Type, err)
		} else {
			log.Printf("✅ Service '%s' inséré", s.Type)
		}
	}
}
