package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/demandes/demandes/dto"
	"ambassade_backend/internals/features/demandes/demandes/model"
	"ambassade_backend/internals/features/demandes/demandes/service"
	helper "ambassade_backend/internals/helpers"
)

var validate = validator.New()

type DemandeController struct {
	DB *gorm.DB
}

func NewDemandeController(db *gorm.DB) *DemandeController {
	return &DemandeController{DB: db}
}

// 🟢 POST /api/u/demandes — création (multipart : champs + fichiers)
func (ctrl *DemandeController) Create(c *fiber.Ctx) error {
	demandeurID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateDemandeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Pièces jointes éventuelles (champ multipart "documents").
	var documents []model.DocumentModel
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["documents"] {
			stored, err := helper.SaveUploadedFile(c, fh, "demandes")
			if err != nil {
				log.Printf("[ERROR] Upload document : %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de l'enregistrement d'une pièce jointe")
			}
			documents = append(documents, model.DocumentModel{
				OriginalName: fh.Filename,
				MimeType:     helper.ContentTypeOf(fh),
				StoredPath:   stored,
				SizeKB:       helper.SizeKB(fh.Size),
				UploaderID:   demandeurID,
			})
		}
	}

	res, err := service.Create(ctrl.DB, &req, demandeurID, documents)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, res.Message, res)
}

// 🟢 GET /api/u/demandes/track/:ticket — suivi par ticket (propriétaire)
func (ctrl *DemandeController) TrackByTicket(c *fiber.Ctx) error {
	demandeurID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	demande, err := service.TrackByTicket(ctrl.DB, c.Params("ticket"), demandeurID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Demande trouvée", dto.ToTrackResponse(demande))
}

// 🟢 GET /api/u/demandes/mes-demandes — mes demandes, paginées
func (ctrl *DemandeController) GetMine(c *fiber.Ctx) error {
	demandeurID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var filter dto.DemandeFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Filtres invalides")
	}
	paging := helper.ResolvePaging(c, 10, 50)

	res, err := service.GetUserRequests(ctrl.DB, demandeurID, &filter, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Demandes récupérées", res.Demandes,
		helper.BuildPagination(res.Total, paging, len(res.Demandes)))
}

// 🟢 GET /api/u/demandes/stats — mes statistiques du mois courant
func (ctrl *DemandeController) GetMyStats(c *fiber.Ctx) error {
	demandeurID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stats, err := service.GetStatsForUser(ctrl.DB, demandeurID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Statistiques récupérées", stats)
}

// 🟢 GET /demandes/:id — personnel : tout ; demandeur : uniquement les siennes
func (ctrl *DemandeController) FindOne(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	demande, err := service.FindOne(ctrl.DB, id, callerID, helper.GetUserTypeFromLocals(c))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Demande récupérée", demande)
}
