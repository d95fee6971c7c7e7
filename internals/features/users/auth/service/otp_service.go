package service

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"gorm.io/gorm"

	authModel "ambassade_backend/internals/features/users/auth/model"
	userModel "ambassade_backend/internals/features/users/user/model"
)

const (
	otpDigits = 4
	otpTTL    = 5 * time.Minute
)

// hotpSecret dérive un secret HOTP par utilisateur (id + secret serveur).
func hotpSecret(u *userModel.UserModel, serverSecret string) string {
	raw := sha256.Sum256([]byte(u.ID.String() + "|" + serverSecret))
	return base32.StdEncoding.EncodeToString(raw[:20])
}

func hashOtpCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// GenerateOtp incrémente le compteur HOTP de l'utilisateur, génère un code à
// 4 chiffres et le stocke haché avec une expiration de 5 minutes.
// Le code en clair est renvoyé pour l'envoi par email, jamais persisté.
func GenerateOtp(db *gorm.DB, user *userModel.UserModel, serverSecret string) (string, error) {
	if err := db.Model(user).
		UpdateColumn("otp_counter", gorm.Expr("otp_counter + 1")).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de génération du code")
	}
	if err := db.First(user, "id = ?", user.ID).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de génération du code")
	}

	code, err := hotp.GenerateCodeCustom(hotpSecret(user, serverSecret), user.OtpCounter, hotp.ValidateOpts{
		Digits:    otp.Digits(otpDigits),
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de génération du code")
	}

	entry := authModel.OtpCode{
		UserID:    user.ID,
		CodeHash:  hashOtpCode(code),
		Counter:   user.OtpCounter,
		ExpiresAt: time.Now().UTC().Add(otpTTL),
	}
	if err := db.Create(&entry).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de génération du code")
	}
	return code, nil
}

// VerifyOtp consomme le dernier code non utilisé et non expiré de l'utilisateur.
func VerifyOtp(db *gorm.DB, userID string, code string) error {
	var entry authModel.OtpCode
	err := db.Where("user_id = ? AND used_at IS NULL AND expires_at > ?", userID, time.Now().UTC()).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Code expiré ou introuvable")
	}

	if entry.CodeHash != hashOtpCode(code) {
		return fiber.NewError(fiber.StatusUnauthorized, "Code incorrect")
	}

	now := time.Now().UTC()
	if err := db.Model(&entry).Update("used_at", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	return nil
}
