package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/stats/dto"
	"ambassade_backend/internals/features/stats/service"
	helpers "ambassade_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

func (ctrl *StatsController) MonthlyVolume(c *fiber.Ctx) error {
	rows, err := service.MonthlyVolume(ctrl.DB)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "Volume mensuel des demandes", rows)
}

func (ctrl *StatsController) FinancialReport(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Paramètres invalides")
	}
	from, to, err := service.ResolvePeriod(filter)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	report, err := service.BuildFinancialReport(ctrl.DB, from, to)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "Rapport financier", report)
}

func (ctrl *StatsController) RecentActivity(c *fiber.Ctx) error {
	rows, err := service.RecentActivity(ctrl.DB, c.QueryInt("limit", 20))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "Activité récente", rows)
}
