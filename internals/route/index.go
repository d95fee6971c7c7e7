package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentRoute "ambassade_backend/internals/features/contents/route"
	demandeRoute "ambassade_backend/internals/features/demandes/demandes/route"
	serviceRoute "ambassade_backend/internals/features/demandes/services/route"
	notifRoute "ambassade_backend/internals/features/notifications/route"
	paiementRoute "ambassade_backend/internals/features/paiements/route"
	statsRoute "ambassade_backend/internals/features/stats/route"
	authRoute "ambassade_backend/internals/features/users/auth/route"
	userRoute "ambassade_backend/internals/features/users/user/route"
	authMw "ambassade_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Vitrine + suivi sans compte : catalogue, contenus, paiement passerelle.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	serviceRoute.ServicePublicRoutes(public, db)
	contentRoute.ContentPublicRoutes(public, db)
	paiementRoute.PaiementPublicRoutes(app.Group("/api"), db)

	// ===================== DEMANDEUR (/api/u) =====================
	log.Println("[INFO] Setting up DEMANDEUR group...")
	demandeur := app.Group("/api/u", authMw.AuthDemandeur(db))
	userRoute.UserSelfRoutes(demandeur, db)
	demandeRoute.DemandeUserRoutes(demandeur, db)
	notifRoute.NotificationRoutes(demandeur, db)
	authRoute.LogoutRoute(demandeur, db)

	// ===================== PERSONNEL (/api/a) =====================
	log.Println("[INFO] Setting up PERSONNEL group...")
	personnel := app.Group("/api/a", authMw.AuthPersonnel(db))
	userRoute.UserSelfRoutes(personnel, db)
	userRoute.UserAdminRoutes(personnel, db)
	serviceRoute.ServiceAdminRoutes(personnel, db)
	demandeRoute.DemandeAdminRoutes(personnel, db)
	paiementRoute.PaiementAdminRoutes(personnel, db)
	contentRoute.ContentAdminRoutes(personnel, db)
	statsRoute.StatsAdminRoutes(personnel, db)
	notifRoute.NotificationRoutes(personnel, db)
	authRoute.LogoutRoute(personnel, db)

	log.Println("[INFO] Toutes les routes sont montées")
}
