package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/contents/dto"
	"ambassade_backend/internals/features/contents/model"
	helpers "ambassade_backend/internals/helpers"
)

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant invalide")
	}
	return id, nil
}

// CreateActualite — multipart : champs texte + fichier "cover" optionnel.
func (ctrl *ContentController) CreateActualite(c *fiber.Ctx) error {
	var req dto.CreateActualiteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	slug := req.Slug
	if slug == "" {
		slug = dto.Slugify(req.Title)
	}

	actu := model.ActualiteModel{
		Title: req.Title,
		Slug:  slug,
		Body:  req.Body,
		Tags:  pq.StringArray(dto.SplitTags(req.Tags)),
	}

	if fh, err := c.FormFile("cover"); err == nil && fh != nil {
		path, err := helpers.SaveUploadedFile(c, fh, "actualites")
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Échec de l'enregistrement de la couverture")
		}
		actu.CoverPath = &path
	}

	if err := ctrl.DB.Create(&actu).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Une actualité avec ce slug existe déjà")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonCreated(c, "Actualité publiée", actu)
}

func (ctrl *ContentController) GetActualites(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 50)

	q := ctrl.DB.Model(&model.ActualiteModel{}).Where("published = ?", true)
	if helpers.IsStaff(c) {
		q = ctrl.DB.Model(&model.ActualiteModel{})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	var list []model.ActualiteModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&list).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonList(c, "Liste des actualités", list,
		helpers.BuildPagination(total, paging, len(list)))
}

func (ctrl *ContentController) GetActualiteBySlug(c *fiber.Ctx) error {
	var actu model.ActualiteModel
	err := ctrl.DB.Where("slug = ?", c.Params("slug")).First(&actu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Actualité introuvable")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonOK(c, "Actualité", actu)
}

func (ctrl *ContentController) UpdateActualite(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.UpdateActualiteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var actu model.ActualiteModel
	if err := ctrl.DB.First(&actu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Actualité introuvable")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	if req.Title != nil {
		actu.Title = *req.Title
	}
	if req.Body != nil {
		actu.Body = *req.Body
	}
	if req.Tags != nil {
		actu.Tags = pq.StringArray(dto.SplitTags(*req.Tags))
	}
	if req.Published != nil {
		actu.Published = *req.Published
	}

	if fh, err := c.FormFile("cover"); err == nil && fh != nil {
		path, err := helpers.SaveUploadedFile(c, fh, "actualites")
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Échec de l'enregistrement de la couverture")
		}
		actu.CoverPath = &path
	}

	if err := ctrl.DB.Save(&actu).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonUpdated(c, "Actualité mise à jour", actu)
}

func (ctrl *ContentController) DeleteActualite(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	res := ctrl.DB.Delete(&model.ActualiteModel{}, "id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Actualité introuvable")
	}
	return helpers.JsonDeleted(c, "Actualité supprimée", fiber.Map{"id": id})
}
