package service

import (
	"fmt"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/configs"
	"ambassade_backend/internals/constants"
	notifService "ambassade_backend/internals/features/notifications/service"
	userModel "ambassade_backend/internals/features/users/user/model"
)

/* ==========================
   Inscription (demandeur)
========================== */

type RegisterInput struct {
	Nom      string
	Prenom   string
	Email    string
	Phone    *string
	Password string
}

func Register(db *gorm.DB, in RegisterInput) (*userModel.UserModel, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	user := userModel.UserModel{
		Nom:      in.Nom,
		Prenom:   in.Prenom,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    in.Phone,
		Password: hash,
		UserType: constants.UserTypeDemandeur,
		Status:   constants.UserStatusActif,
	}
	if err := db.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			return nil, fiber.NewError(fiber.StatusConflict, "Un compte existe déjà avec cet email")
		}
		log.Printf("[ERROR] Inscription : %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec de l'inscription")
	}
	return &user, nil
}

/* ==========================
   Connexion en deux temps
========================== */

// Login vérifie les identifiants puis envoie un code OTP par email.
// Les jetons ne sont délivrés qu'après VerifyOtpAndIssue.
func Login(db *gorm.DB, email, password string) error {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		return err
	}
	if !CheckPassword(user.Password, password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
	}
	return sendOtp(db, user)
}

// ResendOtp regénère et renvoie un code (le précédent reste valable jusqu'à
// expiration mais seul le dernier est accepté).
func ResendOtp(db *gorm.DB, email string) error {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		return err
	}
	return sendOtp(db, user)
}

// VerifyOtpAndIssue échange email+code contre une paire de jetons de l'espace
// de l'utilisateur (personnel ou demandeur).
func VerifyOtpAndIssue(db *gorm.DB, email, code, userAgent, ip string) (*TokenPair, *userModel.UserModel, error) {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		return nil, nil, err
	}
	if err := VerifyOtp(db, user.ID.String(), code); err != nil {
		return nil, nil, err
	}
	pair, err := IssueTokens(db, user, userAgent, ip)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func sendOtp(db *gorm.DB, user *userModel.UserModel) error {
	secret := configs.JWTSecretDemandeur
	if user.UserType == constants.UserTypePersonnel {
		secret = configs.JWTSecretPersonnel
	}
	code, err := GenerateOtp(db, user, secret)
	if err != nil {
		return err
	}

	notifService.SendMailAsync(user.Email,
		"Votre code de vérification",
		fmt.Sprintf("<p>Bonjour %s,</p><p>Votre code de vérification est <b>%s</b>. Il expire dans 5 minutes.</p>", user.Prenom, code),
	)
	return nil
}

func findActiveByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Where("email = ? AND status = ?", strings.ToLower(strings.TrimSpace(email)), constants.UserStatusActif).
		First(&user).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
	}
	return &user, nil
}

/* ==========================
   Connexion Google (demandeur)
========================== */

// LoginGoogle vérifie l'ID token Google et délivre directement les jetons
// (la possession du compte Google vaut second facteur).
func LoginGoogle(db *gorm.DB, idToken, userAgent, ip string) (*TokenPair, *userModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Jeton Google invalide")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claims.Email == "" {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Jeton Google invalide")
	}

	email := strings.ToLower(claims.Email)
	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		// Premier passage : création d'un compte demandeur.
		sub := claims.Sub
		user = userModel.UserModel{
			Nom:      claims.FamilyName,
			Prenom:   claims.GivenName,
			Email:    email,
			Password: "-", // jamais utilisable, connexion Google uniquement
			GoogleID: &sub,
			UserType: constants.UserTypeDemandeur,
			Status:   constants.UserStatusActif,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] Création compte Google : %v", err)
			return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Échec de la connexion Google")
		}
	case err != nil:
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	default:
		if !user.IsActive() {
			return nil, nil, fiber.NewError(fiber.StatusForbidden, "Votre compte a été désactivé")
		}
	}

	pair, err := IssueTokens(db, &user, userAgent, ip)
	if err != nil {
		return nil, nil, err
	}
	return pair, &user, nil
}
