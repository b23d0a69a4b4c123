package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, quantity, warehouse_keeper, responsible_sector, recipient, occurred_at, product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.Quantity, m.WarehouseKeeper, m.ResponsibleSector, m.Recipient,
		m.OccurredAt, m.ProductID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListWithProduct lista los movimientos con LEFT JOIN al producto; si el producto ya no
// existe las columnas del producto llegan NULL y Product queda nil.
func (r *MovementRepo) ListWithProduct(ctx context.Context) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id::text, m.type, m.quantity, m.warehouse_keeper, m.responsible_sector, m.recipient,
			m.occurred_at, m.product_id::text, m.created_at,
			p.code, p.description
		FROM movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.occurred_at DESC, m.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MovementWithProduct, 0)
	for rows.Next() {
		var (
			v           entity.MovementWithProduct
			code        *int64
			description *string
		)
		if err := rows.Scan(&v.ID, &v.Type, &v.Quantity, &v.WarehouseKeeper, &v.ResponsibleSector,
			&v.Recipient, &v.OccurredAt, &v.ProductID, &v.CreatedAt, &code, &description); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if code != nil && description != nil {
			v.Product = &entity.Product{ID: v.ProductID, Code: *code, Description: *description}
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina los movimientos de un producto y devuelve cuántos borró.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete movements by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}
