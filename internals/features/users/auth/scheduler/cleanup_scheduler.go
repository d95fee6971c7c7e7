package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "ambassade_backend/internals/features/users/auth/model"
)

// StartCleanupScheduler purge périodiquement les jetons blacklistés expirés
// et les codes OTP consommés ou périmés.
func StartCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now().UTC()

			if err := db.Where("expires_at < ?", now).
				Delete(&authModel.TokenBlacklist{}).Error; err != nil {
				log.Printf("[ERROR] Purge blacklist : %v", err)
			}

			if err := db.Where("expires_at < ? OR used_at IS NOT NULL", now.Add(-24*time.Hour)).
				Delete(&authModel.OtpCode{}).Error; err != nil {
				log.Printf("[ERROR] Purge OTP : %v", err)
			}

			if err := db.Where("expires_at < ?", now).
				Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
				log.Printf("[ERROR] Purge refresh tokens : %v", err)
			}
		}
	}()
	log.Println("✅ Scheduler de nettoyage démarré (1h)")
}
