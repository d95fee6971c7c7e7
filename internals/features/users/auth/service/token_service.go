// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ambassade_backend/internals/configs"
	"ambassade_backend/internals/constants"
	authModel "ambassade_backend/internals/features/users/auth/model"
	userModel "ambassade_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// secrets par espace de jetons
func secretsFor(userType string) (access, refresh string, err error) {
	switch userType {
	case constants.UserTypePersonnel:
		access, refresh = configs.JWTSecretPersonnel, configs.JWTRefreshSecretPersonnel
	case constants.UserTypeDemandeur:
		access, refresh = configs.JWTSecretDemandeur, configs.JWTRefreshSecretDemandeur
	default:
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Espace de jetons inconnu")
	}
	if access == "" || refresh == "" {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Secret JWT manquant")
	}
	return access, refresh, nil
}

func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// IssueTokens délivre une paire access+refresh dans l'espace de l'utilisateur
// et persiste le hash du refresh token.
func IssueTokens(db *gorm.DB, user *userModel.UserModel, userAgent, ip string) (*TokenPair, error) {
	accessSecret, refreshSecret, err := secretsFor(user.UserType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"email":     user.Email,
		"user_type": user.UserType,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if user.Role != nil {
		accessClaims["role"] = *user.Role
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(accessSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec de création du jeton")
	}

	refreshClaims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_type": user.UserType,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec de création du jeton")
	}

	row := authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		UserType:  user.UserType,
		ExpiresAt: now.Add(refreshTTL),
	}
	if userAgent != "" {
		row.UserAgent = &userAgent
	}
	if ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec d'enregistrement du refresh token")
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RotateRefreshToken valide un refresh token de l'espace donné, révoque
// l'ancien hash et délivre une nouvelle paire.
func RotateRefreshToken(db *gorm.DB, refreshToken, userType, userAgent, ip string) (*TokenPair, error) {
	_, refreshSecret, err := secretsFor(userType)
	if err != nil {
		return nil, err
	}

	tok, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalide")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if ns, _ := claims["user_type"].(string); ns != userType {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token du mauvais espace")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalide")
	}

	hash := computeRefreshHash(refreshToken, refreshSecret)
	var row authModel.RefreshTokenModel
	if err := db.Where("token = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token inconnu ou révoqué")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Utilisateur introuvable")
	}
	if !user.IsActive() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Votre compte a été désactivé")
	}

	// Rotation : l'ancien refresh devient inutilisable.
	now := time.Now().UTC()
	if err := db.Model(&row).Update("revoked_at", now).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	return IssueTokens(db, &user, userAgent, ip)
}

// BlacklistAccessToken révoque un jeton d'accès jusqu'à son expiration naturelle.
func BlacklistAccessToken(db *gorm.DB, tokenString string) error {
	expiresAt := time.Now().UTC().Add(accessTTL)

	// Si le jeton porte un exp lisible, on purge au plus tôt.
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiresAt: expiresAt}
	if err := db.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la déconnexion")
	}
	return nil
}
