package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	authService "ambassade_backend/internals/features/users/auth/service"
	"ambassade_backend/internals/features/users/user/model"
)

// SeedAdmin crée le premier compte administrateur à partir des variables
// ADMIN_EMAIL / ADMIN_PASSWORD. Sans elles, aucun compte n'est créé.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD absents, aucun admin créé")
		return
	}

	var existing model.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ L'admin '%s' existe déjà, ignoré", email)
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("❌ Hash du mot de passe admin impossible: %v", err)
		return
	}

	role := constants.RoleAdmin
	admin := model.UserModel{
		Nom:      "Administrateur",
		Prenom:   "Système",
		Email:    email,
		Password: hashed,
		UserType: constants.UserTypePersonnel,
		Role:     &role,
		Status:   constants.UserStatusActif,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Échec de la création de l'admin '%s': %v", email, err)
	} else {
		log.Printf("✅ Admin '%s' créé", email)
	}
}
