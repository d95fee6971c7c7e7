package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/demandes/demandes/dto"
	"ambassade_backend/internals/features/demandes/demandes/model"
	svcModel "ambassade_backend/internals/features/demandes/services/model"
	pricing "ambassade_backend/internals/features/demandes/services/service"
	notifService "ambassade_backend/internals/features/notifications/service"
	userModel "ambassade_backend/internals/features/users/user/model"
)

var validate = validator.New()

/* =========================================================
   Création — dispatch par type de service
========================================================= */

// Create construit et persiste une demande complète : numérotation du ticket,
// calcul du montant, bloc de détail typé, pièces jointes et statut initial NEW,
// le tout dans UNE transaction. Les Documents sont fournis par le contrôleur
// (fichiers déjà écrits sur disque).
func Create(db *gorm.DB, in *dto.CreateDemandeRequest, demandeurID uuid.UUID, documents []model.DocumentModel) (*dto.CreatedResponse, error) {
	if !svcModel.IsValidServiceType(in.ServiceType) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Type de service inconnu : "+in.ServiceType)
	}

	// Normalisation unique du bloc détail (objet JSON ou chaîne JSON).
	rawDetails, err := dto.NormalizeJSONBlock(in.Details)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bloc de détails illisible (JSON invalide)")
	}
	if len(rawDetails) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Le bloc de détails est requis pour le service %s", in.ServiceType))
	}

	// Une demande sans pièce jointe expose une liste vide, pas null.
	if documents == nil {
		documents = []model.DocumentModel{}
	}

	demande := model.DemandeModel{
		DemandeurID:  demandeurID,
		ServiceType:  in.ServiceType,
		Status:       model.StatusNew,
		Phone:        in.Phone,
		Observations: in.Observations,
		Documents:    documents,
	}

	var durationMonths *int
	switch in.ServiceType {
	case svcModel.ServiceTypeVisa:
		var p dto.VisaDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		detail, err := p.ToModel()
		if err != nil {
			return nil, err
		}
		demande.VisaDetails = detail
		durationMonths = &p.DurationMonths

	case svcModel.ServiceTypeBirthAct:
		var p dto.BirthActDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.BirthActDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypeMarriageAct:
		var p dto.MarriageActDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.MarriageActDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypeDeathAct:
		var p dto.DeathActDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.DeathActDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypeConsularCard:
		var p dto.ConsularCardDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.ConsularCardDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypeLaissezPasser:
		var p dto.LaissezPasserDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.LaissezPasserDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypePowerOfAttorney:
		var p dto.PowerOfAttorneyDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.PowerOfAttorneyDetails, err = p.ToModel(); err != nil {
			return nil, err
		}

	case svcModel.ServiceTypeNationalityCert:
		var p dto.NationalityCertDetailsPayload
		if err := decodeDetail(rawDetails, &p); err != nil {
			return nil, err
		}
		if demande.NationalityCertDetails, err = p.ToModel(); err != nil {
			return nil, err
		}
	}

	amount, err := pricing.CalculateAmount(db, in.ServiceType, durationMonths)
	if err != nil {
		return nil, err
	}
	demande.Amount = amount

	// Numérotation + insertion imbriquée (détail, documents, accompagnateurs)
	// dans la même transaction.
	err = db.Transaction(func(tx *gorm.DB) error {
		ticket, err := NextTicketNumber(tx, GetTicketPrefix(in.ServiceType), time.Now())
		if err != nil {
			return err
		}
		demande.TicketNumber = ticket
		return tx.Create(&demande).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		log.Printf("[ERROR] Création demande : %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec de l'enregistrement de la demande")
	}

	// Fan-out après commit : confirmation au demandeur.
	emitToDemandeur(db, "demande.created", demandeurID, demandeurID, &demande,
		"Demande enregistrée",
		fmt.Sprintf("Votre demande %s a été enregistrée sous le ticket %s.", demande.ServiceType, demande.TicketNumber))

	return &dto.CreatedResponse{
		Message:      fmt.Sprintf("Votre demande a été enregistrée. Conservez votre numéro de ticket : %s", demande.TicketNumber),
		TicketNumber: demande.TicketNumber,
		Demande:      &demande,
	}, nil
}

func decodeDetail(raw json.RawMessage, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bloc de détails invalide : "+err.Error())
	}
	if err := validate.Struct(target); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bloc de détails incomplet : "+err.Error())
	}
	return nil
}

/* =========================================================
   Changement de statut (+ audit)
========================================================= */

// UpdateStatus écrit le nouveau statut et la ligne d'audit dans UNE transaction :
// soit les deux écritures sont visibles, soit aucune.
func UpdateStatus(db *gorm.DB, id uuid.UUID, in *dto.UpdateStatusRequest, staffID uuid.UUID) (*model.DemandeModel, error) {
	if !model.IsValidStatus(in.Status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Statut inconnu : "+in.Status)
	}

	var demande model.DemandeModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&demande, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Demande introuvable")
		}
		oldStatus := demande.Status

		updates := map[string]interface{}{"status": in.Status}
		if in.Observations != nil {
			updates["observations"] = *in.Observations
		}
		if err := tx.Model(&demande).Updates(updates).Error; err != nil {
			return err
		}

		history := model.StatusHistoryModel{
			DemandeID: demande.ID,
			ChangerID: staffID,
			OldStatus: oldStatus,
			NewStatus: in.Status,
			Reason:    in.Reason,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		log.Printf("[ERROR] Changement de statut %s : %v", id, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec du changement de statut")
	}

	emitToDemandeur(db, "demande.status_updated", staffID, demande.DemandeurID, &demande,
		"Votre demande a évolué",
		fmt.Sprintf("Le statut de votre demande %s est passé à %s.", demande.TicketNumber, in.Status))

	return &demande, nil
}

/* =========================================================
   Lectures
========================================================= */

// TrackByTicket — suivi réservé au demandeur propriétaire : pour tout autre
// appelant le ticket est réputé introuvable (pas de 403 révélateur).
func TrackByTicket(db *gorm.DB, ticket string, demandeurID uuid.UUID) (*model.DemandeModel, error) {
	var demande model.DemandeModel
	err := db.Where("ticket_number = ? AND demandeur_id = ?", ticket, demandeurID).
		First(&demande).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Aucune demande trouvée pour ce ticket")
	}
	return &demande, nil
}

// FindOne — le personnel (tout rôle) voit tout ; un demandeur ne voit que les siennes.
func FindOne(db *gorm.DB, id uuid.UUID, callerID uuid.UUID, callerType string) (*model.DemandeModel, error) {
	var demande model.DemandeModel
	q := preloadAll(db).Preload("StatusHistory")
	if err := q.First(&demande, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Demande introuvable")
	}
	if callerType != constants.UserTypePersonnel && demande.DemandeurID != callerID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Vous n'avez pas accès à cette demande")
	}
	return &demande, nil
}

type ListResult struct {
	Demandes []model.DemandeModel
	Total    int64
}

// GetAllFiltered — listing staff avec filtres et pagination.
func GetAllFiltered(db *gorm.DB, f *dto.DemandeFilter, offset, limit int) (*ListResult, error) {
	q := applyFilters(db.Model(&model.DemandeModel{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	var demandes []model.DemandeModel
	err := preloadAll(applyFilters(db, f)).
		Preload("Demandeur").
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).
		Find(&demandes).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	return &ListResult{Demandes: demandes, Total: total}, nil
}

// GetUserRequests — les demandes du demandeur courant.
func GetUserRequests(db *gorm.DB, demandeurID uuid.UUID, f *dto.DemandeFilter, offset, limit int) (*ListResult, error) {
	scoped := &dto.DemandeFilter{
		Status:      f.Status,
		ServiceType: f.ServiceType,
		Ticket:      f.Ticket,
		DateFrom:    f.DateFrom,
		DateTo:      f.DateTo,
		UserID:      demandeurID.String(),
	}
	return GetAllFiltered(db, scoped, offset, limit)
}

func applyFilters(q *gorm.DB, f *dto.DemandeFilter) *gorm.DB {
	q = q.Model(&model.DemandeModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.UserID != "" {
		q = q.Where("demandeur_id = ?", f.UserID)
	}
	if f.Ticket != "" {
		q = q.Where("ticket_number ILIKE ?", "%"+f.Ticket+"%")
	}
	if f.DateFrom != "" {
		if from, err := dto.ParseDate(f.DateFrom); err == nil {
			q = q.Where("submitted_at >= ?", from)
		}
	}
	if f.DateTo != "" {
		if to, err := dto.ParseDate(f.DateTo); err == nil {
			// Borne haute inclusive : fin de journée.
			q = q.Where("submitted_at < ?", to.Add(24*time.Hour))
		}
	}
	return q
}

func preloadAll(db *gorm.DB) *gorm.DB {
	q := db.Preload("Documents")
	for _, rel := range model.DetailRelations {
		q = q.Preload(rel)
	}
	return q
}

/* =========================================================
   Statistiques
========================================================= */

func GetStats(db *gorm.DB) (*dto.StatsResponse, error) {
	return buildStats(db.Model(&model.DemandeModel{}))
}

// GetStatsForUser — fenêtré sur le mois courant.
func GetStatsForUser(db *gorm.DB, demandeurID uuid.UUID) (*dto.StatsResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	q := db.Model(&model.DemandeModel{}).
		Where("demandeur_id = ? AND submitted_at >= ?", demandeurID, monthStart)
	return buildStats(q)
}

func buildStats(q *gorm.DB) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{
		ByStatus:      map[string]int64{},
		ByServiceType: map[string]int64{},
	}

	var byStatus []dto.StatsRow
	if err := q.Session(&gorm.Session{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Key] = row.Count
		stats.Total += row.Count
	}

	var byType []dto.StatsRow
	if err := q.Session(&gorm.Session{}).
		Select("service_type AS key, COUNT(*) AS count").
		Group("service_type").
		Scan(&byType).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	for _, row := range byType {
		stats.ByServiceType[row.Key] = row.Count
	}
	return stats, nil
}

/* =========================================================
   Fan-out
========================================================= */

func emitToDemandeur(db *gorm.DB, event string, actorID, recipientID uuid.UUID, d *model.DemandeModel, title, body string) {
	var recipient userModel.UserModel
	email := ""
	if err := db.First(&recipient, "id = ?", recipientID).Error; err == nil {
		email = recipient.Email
	}
	notifService.Emit(notifService.Event{
		Name:      event,
		ActorID:   actorID,
		SubjectID: recipientID,
		Title:     title,
		Body:      body,
		Email:     email,
		Data: map[string]any{
			"demande_id":    d.ID.String(),
			"ticket_number": d.TicketNumber,
			"status":        d.Status,
		},
	})
}
