package database

import (
	"log"

	contentModel "ambassade_backend/internals/features/contents/model"
	demandeModel "ambassade_backend/internals/features/demandes/demandes/model"
	serviceModel "ambassade_backend/internals/features/demandes/services/model"
	notifModel "ambassade_backend/internals/features/notifications/model"
	paiementModel "ambassade_backend/internals/features/paiements/model"
	authModel "ambassade_backend/internals/features/users/auth/model"
	userModel "ambassade_backend/internals/features/users/user/model"
)

// AllModels liste le schéma complet, dans l'ordre des dépendances.
func AllModels() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},
		&authModel.OtpCode{},

		&serviceModel.ServiceModel{},
		&demandeModel.DemandeModel{},
		&demandeModel.VisaDetailsModel{},
		&demandeModel.BirthActDetailsModel{},
		&demandeModel.MarriageActDetailsModel{},
		&demandeModel.DeathActDetailsModel{},
		&demandeModel.ConsularCardDetailsModel{},
		&demandeModel.LaissezPasserDetailsModel{},
		&demandeModel.AccompagnateurModel{},
		&demandeModel.PowerOfAttorneyDetailsModel{},
		&demandeModel.NationalityCertDetailsModel{},
		&demandeModel.DocumentModel{},
		&demandeModel.StatusHistoryModel{},
		&demandeModel.TicketCounterModel{},

		&paiementModel.PaiementModel{},
		&notifModel.NotificationModel{},

		&contentModel.ActualiteModel{},
		&contentModel.EvenementModel{},
		&contentModel.PhotoModel{},
		&contentModel.VideoModel{},
	}
}

// Migrate crée ou met à jour le schéma. Idempotent, lancé avant les seeds.
func Migrate() {
	if err := DB.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("❌ Échec de la migration du schéma : %v", err)
	}
	log.Println("✅ Schéma migré")
}
