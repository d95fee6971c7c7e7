package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambassade_backend/internals/features/demandes/demandes/model"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-01-14T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("14/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestVisaDetailsToModelDerivesVisaType(t *testing.T) {
	reason := "Tourisme"
	base := VisaDetailsPayload{
		PassportNumber:     "B1234567",
		PassportIssueDate:  "2020-05-01",
		PassportExpiryDate: "2030-05-01",
		TravelReason:       &reason,
	}

	short := base
	short.DurationMonths = 3
	m, err := short.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.VisaTypeShortStay, m.VisaType)

	long := base
	long.DurationMonths = 4
	m, err = long.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.VisaTypeLongStay, m.VisaType)

	bad := base
	bad.DurationMonths = 6
	bad.PassportExpiryDate = "pas-une-date"
	_, err = bad.ToModel()
	assert.Error(t, err)
}

func TestBirthActToModelDefaultsCopiesCount(t *testing.T) {
	p := BirthActDetailsPayload{
		PersonFirstName:  "Ayo",
		PersonLastName:   "HOUNSOU",
		PersonBirthDate:  "1990-03-21",
		PersonBirthPlace: "Cotonou",
		FatherName:       "Jean HOUNSOU",
		MotherName:       "Reine AHOYO",
		ActType:          model.ActTypeCopieIntegrale,
	}
	m, err := p.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 1, m.CopiesCount)

	p.CopiesCount = 3
	m, err = p.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 3, m.CopiesCount)
}

func TestLaissezPasserToModelAccompagnateurs(t *testing.T) {
	base := LaissezPasserDetailsPayload{
		TravelerName: "Koffi DOSSOU",
		BirthDate:    "1985-07-02",
		Destination:  "Lomé",
	}

	// Sans accompagnement, pas de lignes enfants même si la liste est fournie.
	solo := base
	solo.Accompagnateurs = json.RawMessage(`[{"nom":"X","prenom":"Y","birth_date":"2010-01-01"}]`)
	m, err := solo.ToModel()
	require.NoError(t, err)
	assert.Empty(t, m.Accompagnateurs)

	// Accompagné sans liste → rejet.
	missing := base
	missing.Accompanied = true
	_, err = missing.ToModel()
	assert.Error(t, err)

	// Liste transmise comme chaîne JSON (cas multipart) → normalisée.
	quoted := base
	quoted.Accompanied = true
	quoted.Accompagnateurs = json.RawMessage(`"[{\"nom\":\"DOSSOU\",\"prenom\":\"Afi\",\"birth_date\":\"2012-09-15\"}]"`)
	m, err = quoted.ToModel()
	require.NoError(t, err)
	require.Len(t, m.Accompagnateurs, 1)
	assert.Equal(t, "Afi", m.Accompagnateurs[0].Prenom)

	bad := base
	bad.Accompanied = true
	bad.Accompagnateurs = json.RawMessage(`{"nom":"pas-une-liste"}`)
	_, err = bad.ToModel()
	assert.Error(t, err)
}

func TestPowerOfAttorneyToModelOptionalValidUntil(t *testing.T) {
	p := PowerOfAttorneyDetailsPayload{
		PrincipalName:    "A",
		PrincipalAddress: "Cotonou",
		AgentName:        "B",
		AgentAddress:     "Paris",
		Scope:            "Vente d'un terrain",
	}
	m, err := p.ToModel()
	require.NoError(t, err)
	assert.Nil(t, m.ValidUntil)

	until := "2026-12-31"
	p.ValidUntil = &until
	m, err = p.ToModel()
	require.NoError(t, err)
	require.NotNil(t, m.ValidUntil)
	assert.Equal(t, 2026, m.ValidUntil.Year())
}
