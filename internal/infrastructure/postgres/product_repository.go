package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id::text, code, description, quantity, unit, supplementary_description, expiry, supplier, process_number, notes, created_at, updated_at`

// productCodeCounter nombre del contador de códigos en la tabla counters.
const productCodeCounter = "product_code"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q         Querier
	forUpdate bool
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// newLockingProductRepository variante usada dentro de TxRunner: bloquea las filas leídas.
func newLockingProductRepository(tx pgx.Tx) *ProductRepo {
	return &ProductRepo{q: tx, forUpdate: true}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, code, description, description_key, quantity, unit, supplementary_description, expiry, supplier, process_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Code, p.Description, inventory.DescriptionKey(p.Description), p.Quantity, p.Unit,
		p.SupplementaryDescription, p.Expiry, p.Supplier, p.ProcessNumber, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert product: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1` + lockClause(r.forUpdate)
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByDescription obtiene el producto cuya descripción coincide sin distinguir mayúsculas.
func (r *ProductRepo) GetByDescription(ctx context.Context, description string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE description_key = $1 ORDER BY code LIMIT 1` + lockClause(r.forUpdate)
	p, err := scanProduct(r.q.QueryRow(ctx, query, inventory.DescriptionKey(description)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by description: %w", err)
	}
	return p, nil
}

// Update sobrescribe los campos editables. Code no se toca.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET description = $2, description_key = $3, quantity = $4, unit = $5,
			supplementary_description = $6, expiry = $7, supplier = $8, process_number = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Description, inventory.DescriptionKey(p.Description), p.Quantity, p.Unit,
		p.SupplementaryDescription, p.Expiry, p.Supplier, p.ProcessNumber, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	return nil
}

// UpdateQuantity fija la cantidad en stock (usado por el motor de movimientos).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product quantity: %w", domain.ErrNotFound)
	}
	return nil
}

// List lista todos los productos por descripción (collation "C": orden de bytes).
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY description COLLATE "C", code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	return nil
}

// NextCode incrementa el contador atómico de códigos. El contador nunca queda por debajo
// del máximo código existente, así una base con datos previos continúa la secuencia.
func (r *ProductRepo) NextCode(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, (SELECT COALESCE(MAX(code), 0) + 1 FROM products))
		ON CONFLICT (name) DO UPDATE
			SET value = GREATEST(counters.value, (SELECT COALESCE(MAX(code), 0) FROM products)) + 1
		RETURNING value`
	var code int64
	if err := r.q.QueryRow(ctx, query, productCodeCounter).Scan(&code); err != nil {
		return 0, fmt.Errorf("next product code: %w", err)
	}
	return code, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Description, &p.Quantity, &p.Unit, &p.SupplementaryDescription,
		&p.Expiry, &p.Supplier, &p.ProcessNumber, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
