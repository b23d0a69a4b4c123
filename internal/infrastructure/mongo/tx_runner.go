package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn dentro de una transacción de sesión cuando transactional es true
// (requiere replica set). Sin transacciones los pasos se ejecutan en secuencia.
type TxRunner struct {
	client        *mongo.Client
	products      *ProductRepo
	movements     *MovementRepo
	transactional bool
}

// NewTxRunner construye el runner sobre la base indicada.
func NewTxRunner(client *mongo.Client, db *mongo.Database, transactional bool) *TxRunner {
	return &TxRunner{
		client:        client,
		products:      NewProductRepository(db),
		movements:     NewMovementRepository(db),
		transactional: transactional,
	}
}

// Run ejecuta fn. Con transacciones el callback puede reintentarse ante errores transitorios.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if !r.transactional {
		return fn(ctx, r.products, r.movements)
	}
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, r.products, r.movements)
	})
	return err
}
