package repository

import (
	"context"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListWithProduct devuelve los movimientos con su producto (nil si fue eliminado),
	// ordenados por OccurredAt y CreatedAt descendentes.
	ListWithProduct(ctx context.Context) ([]*entity.MovementWithProduct, error)
	// DeleteByProduct elimina los movimientos del producto y devuelve cuántos borró.
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
