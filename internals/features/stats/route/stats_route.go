package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/stats/controller"
	authMw "ambassade_backend/internals/middlewares/auth"
)

// StatsAdminRoutes — tableaux de bord du personnel. Le rapport financier
// est restreint aux rôles finance.
func StatsAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)

	stats := router.Group("/stats")
	stats.Get("/volume-mensuel", ctrl.MonthlyVolume)
	stats.Get("/activite", ctrl.RecentActivity)
	stats.Get("/rapport-financier",
		authMw.RequireRoles(constants.FinanceRoles...),
		ctrl.FinancialReport)
}
