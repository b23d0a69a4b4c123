package inventory

import (
	"context"

	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento, pasando
// repositorios atados a esa transacción y el ctx que la propaga.
// Garantiza que el ajuste de stock y el registro del movimiento se confirmen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
