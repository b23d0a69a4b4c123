package inventory_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveOccurredAt
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveOccurredAt_FechaSeFijaAlMediodiaLocal(t *testing.T) {
	loc := saoPaulo(t)
	got, err := inventory.ResolveOccurredAt("2024-03-10", time.Now(), loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, loc), got)
	assert.Equal(t, "2024-03-10", got.In(loc).Format(inventory.DateLayout))
	// Mediodía local sigue siendo el mismo día en UTC (-03:00).
	assert.Equal(t, 10, got.UTC().Day())
}

func TestResolveOccurredAt_SinFechaUsaNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)
	got, err := inventory.ResolveOccurredAt("  ", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestResolveOccurredAt_FechaMalformada(t *testing.T) {
	_, err := inventory.ResolveOccurredAt("10/03/2024", time.Now(), time.UTC)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// DayRange
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDayRange_SoloDesdeEsUnDia(t *testing.T) {
	loc := saoPaulo(t)
	r, err := inventory.NewDayRange("2024-05-01", "", loc)
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, loc)))
	assert.True(t, r.Contains(time.Date(2024, 5, 1, 23, 59, 59, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 5, 2, 0, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 4, 30, 23, 59, 59, 0, loc)))
}

func TestNewDayRange_IntervaloCerrado(t *testing.T) {
	loc := saoPaulo(t)
	r, err := inventory.NewDayRange("2024-05-01", "2024-05-03", loc)
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 5, 3, 23, 0, 0, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 5, 4, 0, 0, 0, 0, loc)))
}

func TestNewDayRange_Vacio(t *testing.T) {
	r, err := inventory.NewDayRange("", "", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
	assert.True(t, r.Contains(time.Now()))
}

func TestNewDayRange_FinalAnteriorAlInicio(t *testing.T) {
	_, err := inventory.NewDayRange("2024-05-03", "2024-05-01", time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
