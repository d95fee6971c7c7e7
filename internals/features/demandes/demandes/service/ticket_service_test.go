package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	svcModel "ambassade_backend/internals/features/demandes/services/model"
)

func TestGetTicketPrefix(t *testing.T) {
	cases := map[string]string{
		svcModel.ServiceTypeVisa:            "VISA",
		svcModel.ServiceTypeBirthAct:        "NAIS",
		svcModel.ServiceTypeMarriageAct:     "MAR",
		svcModel.ServiceTypeDeathAct:        "DEC",
		svcModel.ServiceTypeConsularCard:    "CART",
		svcModel.ServiceTypeLaissezPasser:   "LPAS",
		svcModel.ServiceTypePowerOfAttorney: "PROC",
		svcModel.ServiceTypeNationalityCert: "NAT",
	}
	for serviceType, prefix := range cases {
		assert.Equal(t, prefix, GetTicketPrefix(serviceType), serviceType)
	}
}

func TestGetTicketPrefixCoversAllTypes(t *testing.T) {
	// Aucun type du catalogue ne doit retomber sur le préfixe générique.
	for _, serviceType := range svcModel.AllServiceTypes {
		assert.NotEqual(t, "REQ", GetTicketPrefix(serviceType), serviceType)
	}
	assert.Equal(t, "REQ", GetTicketPrefix("TYPE_INCONNU"))
}

func TestFormatTicketNumber(t *testing.T) {
	assert.Equal(t, "VISA_20250114_0001", FormatTicketNumber("VISA", "20250114", 1))
	assert.Equal(t, "NAIS_20250114_0042", FormatTicketNumber("NAIS", "20250114", 42))
	assert.Equal(t, "REQ_20251231_12345", FormatTicketNumber("REQ", "20251231", 12345))
}
