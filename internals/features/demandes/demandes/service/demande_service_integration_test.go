//go:build integration

package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/demandes/demandes/dto"
	"ambassade_backend/internals/features/demandes/demandes/model"
	svcModel "ambassade_backend/internals/features/demandes/services/model"
	userModel "ambassade_backend/internals/features/users/user/model"
	"ambassade_backend/internals/testutil"
)

func seedUser(t *testing.T, db *gorm.DB, userType string, role *string) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nom:      "Agbodjan",
		Prenom:   "Reine",
		Email:    fmt.Sprintf("reine-%s@exemple.bj", uuid.NewString()),
		Password: "hash",
		UserType: userType,
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	svc := svcModel.ServiceModel{
		ServiceType:  svcModel.ServiceTypeConsularCard,
		Nom:          "Carte consulaire",
		DefaultPrice: 10000,
	}
	require.NoError(t, db.Create(&svc).Error)
}

func consularCardRequest() *dto.CreateDemandeRequest {
	return &dto.CreateDemandeRequest{
		ServiceType: svcModel.ServiceTypeConsularCard,
		Details: json.RawMessage(`{
			"profession": "Commerçante",
			"address": "Cotonou, Fidjrossè",
			"birth_date": "1990-04-12",
			"birth_place": "Porto-Novo"
		}`),
	}
}

func ticketSeq(t *testing.T, ticket string) int {
	t.Helper()
	parts := strings.Split(ticket, "_")
	require.Len(t, parts, 3)
	seq, err := strconv.Atoi(parts[2])
	require.NoError(t, err)
	return seq
}

func TestCreateDemandeSansPiece(t *testing.T) {
	if testing.Short() {
		t.Skip("test d'intégration, ignoré en mode court")
	}
	db := testutil.OpenPostgres(t)
	seedCatalog(t, db)
	demandeur := seedUser(t, db, constants.UserTypeDemandeur, nil)

	res, err := Create(db, consularCardRequest(), demandeur.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Demande)

	// Sans pièce jointe, `documents` sérialise en liste vide, pas en null.
	require.NotNil(t, res.Demande.Documents)
	assert.Empty(t, res.Demande.Documents)

	payload, err := json.Marshal(res.Demande)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"documents":[]`)

	// La relecture passe par le même contrat.
	found, err := FindOne(db, res.Demande.ID, demandeur.ID, constants.UserTypeDemandeur)
	require.NoError(t, err)
	require.NotNil(t, found.Documents)
	assert.Empty(t, found.Documents)
}

func TestUpdateStatusJournalise(t *testing.T) {
	if testing.Short() {
		t.Skip("test d'intégration, ignoré en mode court")
	}
	db := testutil.OpenPostgres(t)
	seedCatalog(t, db)
	demandeur := seedUser(t, db, constants.UserTypeDemandeur, nil)
	role := constants.RoleAgent
	staff := seedUser(t, db, constants.UserTypePersonnel, &role)

	res, err := Create(db, consularCardRequest(), demandeur.ID, nil)
	require.NoError(t, err)
	demandeID := res.Demande.ID

	var count int64
	require.NoError(t, db.Model(&model.StatusHistoryModel{}).
		Where("demande_id = ?", demandeID).Count(&count).Error)
	assert.Zero(t, count)

	// Première transition : exactement UNE ligne d'audit, avec l'ancien statut.
	_, err = UpdateStatus(db, demandeID, &dto.UpdateStatusRequest{Status: model.StatusInReview}, staff.ID)
	require.NoError(t, err)

	var history []model.StatusHistoryModel
	require.NoError(t, db.Where("demande_id = ?", demandeID).
		Order("changed_at ASC").Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, model.StatusNew, history[0].OldStatus)
	assert.Equal(t, model.StatusInReview, history[0].NewStatus)
	assert.Equal(t, staff.ID, history[0].ChangerID)

	// Seconde transition : une seule ligne de plus, chaînée sur la précédente.
	_, err = UpdateStatus(db, demandeID, &dto.UpdateStatusRequest{Status: model.StatusApproved}, staff.ID)
	require.NoError(t, err)

	require.NoError(t, db.Where("demande_id = ?", demandeID).
		Order("changed_at ASC").Find(&history).Error)
	require.Len(t, history, 2)
	assert.Equal(t, model.StatusInReview, history[1].OldStatus)
	assert.Equal(t, model.StatusApproved, history[1].NewStatus)
}

func TestNextTicketNumberSequence(t *testing.T) {
	if testing.Short() {
		t.Skip("test d'intégration, ignoré en mode court")
	}
	db := testutil.OpenPostgres(t)
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Réservations successives : séquence strictement croissante.
	var last int
	for i := 1; i <= 5; i++ {
		var ticket string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			ticket, err = NextTicketNumber(tx, "CART", day)
			return err
		})
		require.NoError(t, err)
		seq := ticketSeq(t, ticket)
		assert.Greater(t, seq, last)
		last = seq
	}

	// Réservations concurrentes : jamais deux fois le même numéro.
	const goroutines = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		tickets = map[string]bool{}
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.Transaction(func(tx *gorm.DB) error {
				ticket, err := NextTicketNumber(tx, "CART", day)
				if err != nil {
					return err
				}
				mu.Lock()
				tickets[ticket] = true
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Len(t, tickets, goroutines)
}
