package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	demandeModel "ambassade_backend/internals/features/demandes/demandes/model"
	notifService "ambassade_backend/internals/features/notifications/service"
	"ambassade_backend/internals/features/paiements/dto"
	"ambassade_backend/internals/features/paiements/model"
	userModel "ambassade_backend/internals/features/users/user/model"
	helpers "ambassade_backend/internals/helpers"
)

type CreateParams struct {
	Amount         int64
	Method         string
	Ticket         *string
	Source         *string
	TransactionID  *string
	GatewayPayload datatypes.JSON
	PaymentDate    time.Time
	RecorderID     *uuid.UUID
}

// Create valide puis enregistre un paiement. Si un ticket est fourni, la
// demande correspondante est marquée payée dans la même transaction.
func Create(db *gorm.DB, p CreateParams) (*model.PaiementModel, error) {
	if !model.IsValidMethod(p.Method) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Moyen de paiement invalide")
	}

	var demande *demandeModel.DemandeModel
	if p.Ticket != nil && *p.Ticket != "" {
		var d demandeModel.DemandeModel
		if err := db.Where("ticket_number = ?", *p.Ticket).First(&d).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Aucune demande pour ce ticket")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
		}
		if p.Amount < d.Amount {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Le montant versé est inférieur au montant de la demande")
		}
		demande = &d
	}

	if p.RecorderID != nil {
		var staff userModel.UserModel
		if err := db.Where("id = ? AND user_type = ?", *p.RecorderID, constants.UserTypePersonnel).
			First(&staff).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Agent enregistreur introuvable")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
		}
	}

	paiement := model.PaiementModel{
		Amount:         p.Amount,
		Method:         p.Method,
		TransactionID:  p.TransactionID,
		Source:         p.Source,
		GatewayPayload: p.GatewayPayload,
		PaymentDate:    p.PaymentDate,
		RecorderID:     p.RecorderID,
	}
	if demande != nil {
		paiement.DemandeID = &demande.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&paiement).Error; err != nil {
			return err
		}
		if demande != nil && !demande.Paied {
			paidAt := p.PaymentDate
			if err := tx.Model(&demandeModel.DemandeModel{}).
				Where("id = ?", demande.ID).
				Updates(map[string]interface{}{
					"paied":    true,
					"paied_at": paidAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// L'index unique sur transaction_id arbitre les soumissions
		// concurrentes de la même transaction passerelle.
		if strings.Contains(err.Error(), "23505") {
			return nil, fiber.NewError(fiber.StatusConflict, "Cette transaction a déjà été enregistrée")
		}
		log.Printf("[ERROR] Enregistrement du paiement échoué: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	if demande != nil {
		notifyDemandeur(db, demande, paiement.Amount)
	}
	return &paiement, nil
}

func notifyDemandeur(db *gorm.DB, demande *demandeModel.DemandeModel, amount int64) {
	var demandeur userModel.UserModel
	if err := db.Select("id", "email").First(&demandeur, "id = ?", demande.DemandeurID).Error; err != nil {
		log.Printf("[WARN] Demandeur introuvable pour notification paiement: %v", err)
		return
	}
	notifService.Emit(notifService.Event{
		Name:      "paiement.created",
		SubjectID: demandeur.ID,
		Title:     "Paiement reçu",
		Body: "Votre paiement pour la demande " + demande.TicketNumber +
			" a bien été enregistré.",
		Email: demandeur.Email,
		Data: map[string]interface{}{
			"ticket": demande.TicketNumber,
			"amount": amount,
		},
	})
}

// PayWithKkiapay vérifie la transaction auprès de la passerelle puis
// enregistre le paiement vérifié sur la demande du ticket.
func PayWithKkiapay(db *gorm.DB, c *fiber.Ctx, req dto.PayKkiapayRequest) (*model.PaiementModel, error) {
	var exists int64
	if err := db.Model(&model.PaiementModel{}).
		Where("transaction_id = ?", req.TransactionID).
		Count(&exists).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	if exists > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Cette transaction a déjà été enregistrée")
	}

	tx, err := NewKkiapayClient().VerifyTransaction(c.Context(), req.TransactionID)
	if err != nil {
		return nil, err
	}

	txID := tx.TransactionID
	if txID == "" {
		txID = req.TransactionID
	}
	source := tx.Source

	return Create(db, CreateParams{
		Amount:         tx.Amount,
		Method:         MapKkiapaySource(tx.Source),
		Ticket:         &req.Ticket,
		Source:         &source,
		TransactionID:  &txID,
		GatewayPayload: datatypes.JSON(tx.Raw),
		PaymentDate:    time.Now(),
	})
}

// FindAll liste les paiements avec filtres et pagination.
func FindAll(db *gorm.DB, f dto.PaiementFilter, p helpers.Paging) ([]model.PaiementModel, int64, error) {
	q := db.Model(&model.PaiementModel{})

	if f.Ticket != "" {
		q = q.Joins("JOIN demandes ON demandes.id = paiements.demande_id").
			Where("demandes.ticket_number ILIKE ?", "%"+f.Ticket+"%")
	}
	if f.Method != "" {
		q = q.Where("paiements.method = ?", f.Method)
	}
	if f.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", f.DateFrom); err == nil {
			q = q.Where("paiements.payment_date >= ?", from)
		}
	}
	if f.DateTo != "" {
		if to, err := time.Parse("2006-01-02", f.DateTo); err == nil {
			q = q.Where("paiements.payment_date < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	var list []model.PaiementModel
	if err := q.Preload("Demande").Preload("Recorder").
		Order("paiements.payment_date DESC").
		Offset(p.Offset).Limit(p.PerPage).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	return list, total, nil
}

// Remove supprime définitivement un paiement. La demande liée reste
// marquée payée, l'annulation comptable se fait hors système.
func Remove(db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(&model.PaiementModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Paiement introuvable")
	}
	return nil
}
