package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds lance les seeders idempotents au démarrage.
func RunAllSeeds(db *gorm.DB) {
	SeedServices(db)
	SeedAdmin(db)
}
