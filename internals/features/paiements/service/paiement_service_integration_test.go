//go:build integration

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	demandeModel "ambassade_backend/internals/features/demandes/demandes/model"
	svcModel "ambassade_backend/internals/features/demandes/services/model"
	"ambassade_backend/internals/features/paiements/model"
	userModel "ambassade_backend/internals/features/users/user/model"
	"ambassade_backend/internals/testutil"
)

func seedDemandeur(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nom:      "Kossou",
		Prenom:   "Alice",
		Email:    fmt.Sprintf("alice-%s@exemple.bj", uuid.NewString()),
		Password: "hash",
		UserType: constants.UserTypeDemandeur,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedStaff(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	role := constants.RoleAgent
	u := userModel.UserModel{
		Nom:      "Dossa",
		Prenom:   "Marc",
		Email:    fmt.Sprintf("marc-%s@exemple.bj", uuid.NewString()),
		Password: "hash",
		UserType: constants.UserTypePersonnel,
		Role:     &role,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedDemande(t *testing.T, db *gorm.DB, demandeurID uuid.UUID, ticket string, amount int64) *demandeModel.DemandeModel {
	t.Helper()
	d := demandeModel.DemandeModel{
		DemandeurID:  demandeurID,
		TicketNumber: ticket,
		ServiceType:  svcModel.ServiceTypeConsularCard,
		Status:       demandeModel.StatusNew,
		Amount:       amount,
	}
	require.NoError(t, db.Create(&d).Error)
	return &d
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestCreatePaiement(t *testing.T) {
	if testing.Short() {
		t.Skip("test d'intégration, ignoré en mode court")
	}
	db := testutil.OpenPostgres(t)
	demandeur := seedDemandeur(t, db)
	staff := seedStaff(t, db)

	t.Run("montant inférieur à la demande refusé", func(t *testing.T) {
		demande := seedDemande(t, db, demandeur.ID, "CART_20260829_0101", 10000)

		_, err := Create(db, CreateParams{
			Amount:      demande.Amount - 1,
			Method:      model.MethodCash,
			Ticket:      &demande.TicketNumber,
			PaymentDate: time.Now(),
			RecorderID:  &staff.ID,
		})
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("montant égal accepté et demande marquée payée", func(t *testing.T) {
		demande := seedDemande(t, db, demandeur.ID, "CART_20260829_0102", 10000)

		p, err := Create(db, CreateParams{
			Amount:      demande.Amount,
			Method:      model.MethodCash,
			Ticket:      &demande.TicketNumber,
			PaymentDate: time.Now(),
			RecorderID:  &staff.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, p.DemandeID)
		assert.Equal(t, demande.ID, *p.DemandeID)

		var reloaded demandeModel.DemandeModel
		require.NoError(t, db.First(&reloaded, "id = ?", demande.ID).Error)
		assert.True(t, reloaded.Paied)
		require.NotNil(t, reloaded.PaiedAt)
	})

	t.Run("ticket inconnu refusé en requête invalide", func(t *testing.T) {
		ticket := "CART_20260829_9999"
		_, err := Create(db, CreateParams{
			Amount:      5000,
			Method:      model.MethodCash,
			Ticket:      &ticket,
			PaymentDate: time.Now(),
		})
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("enregistreur inconnu refusé en requête invalide", func(t *testing.T) {
		ghost := uuid.New()
		_, err := Create(db, CreateParams{
			Amount:      5000,
			Method:      model.MethodCash,
			PaymentDate: time.Now(),
			RecorderID:  &ghost,
		})
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("transaction passerelle dupliquée en conflit", func(t *testing.T) {
		txID := "kk-" + uuid.NewString()

		_, err := Create(db, CreateParams{
			Amount:        5000,
			Method:        model.MethodMobileMoney,
			TransactionID: &txID,
			PaymentDate:   time.Now(),
		})
		require.NoError(t, err)

		_, err = Create(db, CreateParams{
			Amount:        5000,
			Method:        model.MethodMobileMoney,
			TransactionID: &txID,
			PaymentDate:   time.Now(),
		})
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	})
}
