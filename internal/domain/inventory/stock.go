package inventory

import (
	"fmt"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
)

// Withdraw descuenta qty del stock actual. Una salida mayor que el stock se rechaza,
// nunca se recorta a cero.
func Withdraw(current, qty int64) (int64, error) {
	if qty <= 0 {
		return current, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if qty > current {
		return current, fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, current, qty)
	}
	return current - qty, nil
}

// Deposit suma qty al stock actual.
func Deposit(current, qty int64) (int64, error) {
	if qty <= 0 {
		return current, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return current + qty, nil
}
