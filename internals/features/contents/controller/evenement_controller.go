package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/contents/dto"
	"ambassade_backend/internals/features/contents/model"
	helpers "ambassade_backend/internals/helpers"
)

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (ctrl *ContentController) CreateEvenement(c *fiber.Ctx) error {
	var req dto.CreateEvenementRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	startsAt, err := parseEventDate(req.StartsAt)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Date de début invalide")
	}

	slug := req.Slug
	if slug == "" {
		slug = dto.Slugify(req.Title)
	}

	ev := model.EvenementModel{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
	}
	if req.EndsAt != nil && *req.EndsAt != "" {
		endsAt, err := parseEventDate(*req.EndsAt)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Date de fin invalide")
		}
		if endsAt.Before(startsAt) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "La date de fin précède la date de début")
		}
		ev.EndsAt = &endsAt
	}

	if err := ctrl.DB.Create(&ev).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Un événement avec ce slug existe déjà")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonCreated(c, "Événement créé", ev)
}

// GetEvenements — les événements à venir d'abord, passés en fin de liste.
func (ctrl *ContentController) GetEvenements(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 50)

	q := ctrl.DB.Model(&model.EvenementModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	var list []model.EvenementModel
	if err := q.Order("starts_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&list).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonList(c, "Liste des événements", list,
		helpers.BuildPagination(total, paging, len(list)))
}

func (ctrl *ContentController) GetEvenementBySlug(c *fiber.Ctx) error {
	var ev model.EvenementModel
	err := ctrl.DB.Where("slug = ?", c.Params("slug")).First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Événement introuvable")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonOK(c, "Événement", ev)
}

func (ctrl *ContentController) DeleteEvenement(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	res := ctrl.DB.Delete(&model.EvenementModel{}, "id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Événement introuvable")
	}
	return helpers.JsonDeleted(c, "Événement supprimé", fiber.Map{"id": id})
}
