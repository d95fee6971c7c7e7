package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/users/auth/service"
	userDto "ambassade_backend/internals/features/users/user/dto"
	helper "ambassade_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	Nom      string  `json:"nom"      validate:"required,min=2,max=100"`
	Prenom   string  `json:"prenom"   validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=4,numeric"`
}

type resendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type googleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🟢 POST /api/auth/register — inscription d'un demandeur
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB, service.RegisterInput{
		Nom:      req.Nom,
		Prenom:   req.Prenom,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Compte créé. Connectez-vous pour recevoir votre code.", userDto.ToUserResponse(user))
}

// 🟢 POST /api/auth/login — mot de passe ⇒ envoi d'un code OTP par email
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.Login(ctrl.DB, req.Email, req.Password); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Un code de vérification vous a été envoyé par email.", nil)
}

// 🟢 POST /api/auth/verify-otp — code ⇒ jetons
func (ctrl *AuthController) VerifyOtp(c *fiber.Ctx) error {
	var req otpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pair, user, err := service.VerifyOtpAndIssue(ctrl.DB, req.Email, req.Code, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Connexion réussie", fiber.Map{
		"tokens": pair,
		"user":   userDto.ToUserResponse(user),
	})
}

// 🟢 POST /api/auth/resend-otp
func (ctrl *AuthController) ResendOtp(c *fiber.Ctx) error {
	var req resendOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.ResendOtp(ctrl.DB, req.Email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Un nouveau code vous a été envoyé.", nil)
}

// 🟢 POST /api/auth/refresh-token — espace demandeur
func (ctrl *AuthController) RefreshDemandeur(c *fiber.Ctx) error {
	return ctrl.refresh(c, constants.UserTypeDemandeur)
}

// 🟢 POST /api/auth/personnel/refresh-token — espace personnel
func (ctrl *AuthController) RefreshPersonnel(c *fiber.Ctx) error {
	return ctrl.refresh(c, constants.UserTypePersonnel)
}

func (ctrl *AuthController) refresh(c *fiber.Ctx, userType string) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pair, err := service.RotateRefreshToken(ctrl.DB, req.RefreshToken, userType, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Jetons renouvelés", pair)
}

// 🟢 POST /api/auth/google — connexion Google (demandeur)
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req googleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pair, user, err := service.LoginGoogle(ctrl.DB, req.IDToken, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Connexion réussie", fiber.Map{
		"tokens": pair,
		"user":   userDto.ToUserResponse(user),
	})
}

// 🔴 POST /logout — révoque le jeton d'accès courant (route authentifiée)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "En-tête Authorization manquant")
	}
	if err := service.BlacklistAccessToken(ctrl.DB, strings.TrimSpace(parts[1])); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Déconnexion réussie", nil)
}
