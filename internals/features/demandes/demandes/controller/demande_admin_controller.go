package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ambassade_backend/internals/features/demandes/demandes/dto"
	"ambassade_backend/internals/features/demandes/demandes/service"
	helper "ambassade_backend/internals/helpers"
)

// 🟢 GET /api/a/demandes — listing staff, filtres + pagination
func (ctrl *DemandeController) GetAllFiltered(c *fiber.Ctx) error {
	var filter dto.DemandeFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Filtres invalides")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	res, err := service.GetAllFiltered(ctrl.DB, &filter, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Demandes récupérées", res.Demandes,
		helper.BuildPagination(res.Total, paging, len(res.Demandes)))
}

// 🟡 PUT /api/a/demandes/:id/status — changement de statut + audit
func (ctrl *DemandeController) UpdateStatus(c *fiber.Ctx) error {
	staffID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	demande, err := service.UpdateStatus(ctrl.DB, id, &req, staffID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Statut mis à jour", demande)
}

// 🟢 GET /api/a/demandes/stats — tableau de bord staff
func (ctrl *DemandeController) GetStats(c *fiber.Ctx) error {
	stats, err := service.GetStats(ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Statistiques récupérées", stats)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant invalide")
	}
	return id, nil
}
