package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/paiements/dto"
	"ambassade_backend/internals/features/paiements/service"
	helpers "ambassade_backend/internals/helpers"
)

type PaiementController struct {
	DB *gorm.DB
}

func NewPaiementController(db *gorm.DB) *PaiementController {
	return &PaiementController{DB: db}
}

var validate = validator.New()

// Create — enregistrement manuel d'un encaissement par le personnel.
func (ctrl *PaiementController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaiementRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		parsed, err := dtoParseDate(*req.PaymentDate)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Date de paiement invalide")
		}
		paymentDate = parsed
	}

	recorderID, err := helpers.GetUserIDFromLocals(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	paiement, err := service.Create(ctrl.DB, service.CreateParams{
		Amount:      req.Amount,
		Method:      req.Method,
		Ticket:      req.Ticket,
		Source:      req.Source,
		PaymentDate: paymentDate,
		RecorderID:  &recorderID,
	})
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Paiement enregistré", dto.ToPaiementResponse(paiement))
}

// PayKkiapay — flux public : le demandeur fournit l'identifiant de la
// transaction Kkiapay et le ticket de sa demande.
func (ctrl *PaiementController) PayKkiapay(c *fiber.Ctx) error {
	var req dto.PayKkiapayRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	paiement, err := service.PayWithKkiapay(ctrl.DB, c, req)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Paiement vérifié et enregistré", dto.ToPaiementResponse(paiement))
}

// GetAll — liste paginée pour le personnel.
func (ctrl *PaiementController) GetAll(c *fiber.Ctx) error {
	var filter dto.PaiementFilter
	if err := c.QueryParser(&filter); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Paramètres invalides")
	}
	paging := helpers.ResolvePaging(c, 20, 100)

	list, total, err := service.FindAll(ctrl.DB, filter, paging)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonList(c, "Liste des paiements", dto.ToPaiementResponseList(list),
		helpers.BuildPagination(total, paging, len(list)))
}

// Delete — suppression définitive (correction d'une erreur de saisie).
func (ctrl *PaiementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}
	if err := service.Remove(ctrl.DB, id); err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonDeleted(c, "Paiement supprimé", fiber.Map{"id": id})
}

func dtoParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
