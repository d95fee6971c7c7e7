package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/users/auth/controller"
	"ambassade_backend/internals/middlewares"
)

// Routes publiques d'authentification.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/verify-otp", middlewares.LoginRateLimiter(), ctrl.VerifyOtp)
	auth.Post("/resend-otp", middlewares.OtpRateLimiter(), ctrl.ResendOtp)
	auth.Post("/refresh-token", ctrl.RefreshDemandeur)
	auth.Post("/personnel/refresh-token", ctrl.RefreshPersonnel)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
}

// Logout, monté sous les groupes authentifiés.
func LogoutRoute(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	api.Post("/logout", ctrl.Logout)
}
