package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/demandes/services/model"
	helper "ambassade_backend/internals/helpers"
)

var validate = validator.New()

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

type serviceRequest struct {
	ServiceType     string `json:"service_type"      validate:"required"`
	Nom             string `json:"nom"               validate:"required,min=2,max=255"`
	Description     string `json:"description"`
	DefaultPrice    int64  `json:"default_price"     validate:"required,gt=0"`
	IsVariablePrice bool   `json:"is_variable_price"`
}

type serviceUpdateRequest struct {
	Nom             *string `json:"nom" validate:"omitempty,min=2,max=255"`
	Description     *string `json:"description"`
	DefaultPrice    *int64  `json:"default_price" validate:"omitempty,gt=0"`
	IsVariablePrice *bool   `json:"is_variable_price"`
}

// 🟢 GET /api/public/services — catalogue visible de tous
func (ctrl *ServiceController) GetAll(c *fiber.Ctx) error {
	var services []model.ServiceModel
	if err := ctrl.DB.Order("nom ASC").Find(&services).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	return helper.JsonOK(c, "Catalogue récupéré", services)
}

// 🟢 GET /api/public/services/:type
func (ctrl *ServiceController) GetByType(c *fiber.Ctx) error {
	var svc model.ServiceModel
	if err := ctrl.DB.Where("service_type = ?", c.Params("type")).First(&svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Service consulaire introuvable")
	}
	return helper.JsonOK(c, "Service récupéré", svc)
}

// 🟢 POST /api/a/services — ajout au catalogue (ADMIN)
func (ctrl *ServiceController) Create(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !model.IsValidServiceType(req.ServiceType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Type de service inconnu")
	}

	svc := model.ServiceModel{
		ServiceType:     req.ServiceType,
		Nom:             req.Nom,
		Description:     req.Description,
		DefaultPrice:    req.DefaultPrice,
		IsVariablePrice: req.IsVariablePrice,
	}
	if err := ctrl.DB.Create(&svc).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, fiber.StatusConflict, "Ce type de service existe déjà au catalogue")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la création du service")
	}
	return helper.JsonCreated(c, "Service ajouté au catalogue", svc)
}

// 🟡 PUT /api/a/services/:type — mise à jour d'un service (ADMIN)
func (ctrl *ServiceController) Update(c *fiber.Ctx) error {
	var svc model.ServiceModel
	if err := ctrl.DB.Where("service_type = ?", c.Params("type")).First(&svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Service consulaire introuvable")
	}

	var req serviceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Nom != nil {
		updates["nom"] = *req.Nom
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DefaultPrice != nil {
		updates["default_price"] = *req.DefaultPrice
	}
	if req.IsVariablePrice != nil {
		updates["is_variable_price"] = *req.IsVariablePrice
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	if err := ctrl.DB.Model(&svc).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la mise à jour")
	}
	return helper.JsonUpdated(c, "Service mis à jour", svc)
}

// 🔴 DELETE /api/a/services/:type — retrait du catalogue (ADMIN)
func (ctrl *ServiceController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Where("service_type = ?", c.Params("type")).
		Delete(&model.ServiceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la suppression")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Service consulaire introuvable")
	}
	return helper.JsonDeleted(c, "Service retiré du catalogue", fiber.Map{"service_type": c.Params("type")})
}
