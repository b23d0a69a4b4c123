package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
)

func TestWithdraw(t *testing.T) {
	got, err := inventory.Withdraw(15, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = inventory.Withdraw(15, 20)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(15), got, "el stock no cambia si la salida se rechaza")

	_, err = inventory.Withdraw(15, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeposit(t *testing.T) {
	got, err := inventory.Deposit(10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)

	_, err = inventory.Deposit(10, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDescriptionKey_IgnoraMayusculasYEspacios(t *testing.T) {
	assert.Equal(t, inventory.DescriptionKey("Luvas"), inventory.DescriptionKey("  LUVAS "))
	assert.Equal(t, inventory.DescriptionKey("Água sanitária"), inventory.DescriptionKey("ÁGUA SANITÁRIA"))
	assert.NotEqual(t, inventory.DescriptionKey("Luvas"), inventory.DescriptionKey("Luva"))
	assert.NotEqual(t, inventory.DescriptionKey("Straße"), inventory.DescriptionKey("STRASSE"))
	assert.NotEqual(t, inventory.DescriptionKey("\ufb01le"), inventory.DescriptionKey("FILE"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, inventory.ContainsFold("Papel A4", "a4"))
	assert.True(t, inventory.ContainsFold("Papel A4", ""))
	assert.False(t, inventory.ContainsFold("Papel A4", "caneta"))
}
