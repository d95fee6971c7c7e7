// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ambassade_backend/internals/configs"
	"ambassade_backend/internals/constants"
	authModel "ambassade_backend/internals/features/users/auth/model"
)

// AuthPersonnel protège les routes du back-office (jetons espace personnel).
func AuthPersonnel(db *gorm.DB) fiber.Handler {
	return authMiddleware(db, func() string { return configs.JWTSecretPersonnel }, constants.UserTypePersonnel)
}

// AuthDemandeur protège les routes du portail public (jetons espace demandeur).
func AuthDemandeur(db *gorm.DB) fiber.Handler {
	return authMiddleware(db, func() string { return configs.JWTSecretDemandeur }, constants.UserTypeDemandeur)
}

func authMiddleware(db *gorm.DB, secret func() string, expectedType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Jeton révoqué (logout) ?
		var blacklisted authModel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&blacklisted).Error; err == nil {
			log.Println("[WARN] Jeton trouvé dans la blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton révoqué")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Blacklist DB:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
		}

		secretKey := secret()
		if secretKey == "" {
			log.Println("[ERROR] Secret JWT manquant")
			return fiber.NewError(fiber.StatusInternalServerError, "Secret JWT manquant")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("méthode de signature inattendue")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton invalide ou expiré")
		}

		if err := validateExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton expiré")
		}

		userType, _ := claims["user_type"].(string)
		if userType != expectedType {
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton du mauvais espace")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Identifiant utilisateur invalide")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Utilisateur introuvable")
			}
			return fiber.NewError(fiber.StatusForbidden, "Votre compte a été désactivé")
		}

		c.Locals("user_id", userID.String())
		c.Locals("user_type", userType)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", errors.New("en-tête Authorization manquant")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("format Authorization invalide")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp manquant")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("jeton expiré")
	}
	return nil
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var status string
	err := db.Table("users").
		Select("status").
		Where("id = ?", userID).
		Take(&status).Error
	if err != nil {
		return err
	}
	if status != constants.UserStatusActif {
		return errors.New("compte inactif")
	}
	return nil
}
