package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambassade_backend/internals/features/stats/dto"
)

func TestResolvePeriodDefaultsToCurrentMonth(t *testing.T) {
	from, to, err := ResolvePeriod(dto.ReportFilter{})
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Month(), from.Month())
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, from.AddDate(0, 1, 0), to)
}

func TestResolvePeriodExplicitBounds(t *testing.T) {
	from, to, err := ResolvePeriod(dto.ReportFilter{
		DateFrom: "2025-01-01",
		DateTo:   "2025-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
	// Borne haute exclusive : lendemain de date_to.
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestResolvePeriodRejectsInvalidInput(t *testing.T) {
	_, _, err := ResolvePeriod(dto.ReportFilter{DateFrom: "01/01/2025"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	_, _, err = ResolvePeriod(dto.ReportFilter{
		DateFrom: "2025-02-01",
		DateTo:   "2025-01-01",
	})
	assert.Error(t, err)
}
