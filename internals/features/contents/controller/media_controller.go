package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/contents/dto"
	"ambassade_backend/internals/features/contents/model"
	helpers "ambassade_backend/internals/helpers"
)

// CreatePhoto — multipart : titre + fichier "image", converti en webp
// avec génération de miniature.
func (ctrl *ContentController) CreatePhoto(c *fiber.Ctx) error {
	var req dto.CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Le fichier image est requis")
	}

	imagePath, thumbPath, err := helpers.SaveImageAsWebp(fh, "photos")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Image illisible ou format non supporté")
	}

	photo := model.PhotoModel{
		Title:     req.Title,
		ImagePath: imagePath,
		ThumbPath: thumbPath,
	}
	if err := ctrl.DB.Create(&photo).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonCreated(c, "Photo ajoutée", photo)
}

func (ctrl *ContentController) GetPhotos(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PhotoModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	var list []model.PhotoModel
	if err := ctrl.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&list).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonList(c, "Galerie photos", list,
		helpers.BuildPagination(total, paging, len(list)))
}

func (ctrl *ContentController) DeletePhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	res := ctrl.DB.Delete(&model.PhotoModel{}, "id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Photo introuvable")
	}
	return helpers.JsonDeleted(c, "Photo supprimée", fiber.Map{"id": id})
}

func (ctrl *ContentController) CreateVideo(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	video := model.VideoModel{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := ctrl.DB.Create(&video).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonCreated(c, "Vidéo ajoutée", video)
}

func (ctrl *ContentController) GetVideos(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.VideoModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	var list []model.VideoModel
	if err := ctrl.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&list).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonList(c, "Liste des vidéos", list,
		helpers.BuildPagination(total, paging, len(list)))
}

func (ctrl *ContentController) GetVideoByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	var video model.VideoModel
	dbErr := ctrl.DB.First(&video, "id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Vidéo introuvable")
	}
	if dbErr != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helpers.JsonOK(c, "Vidéo", video)
}

func (ctrl *ContentController) DeleteVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	res := ctrl.DB.Delete(&model.VideoModel{}, "id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Vidéo introuvable")
	}
	return helpers.JsonDeleted(c, "Vidéo supprimée", fiber.Map{"id": id})
}
