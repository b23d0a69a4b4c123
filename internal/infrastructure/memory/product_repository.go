package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

// Create guarda un producto nuevo. El código debe ser único.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return fmt.Errorf("insert product: %w", domain.ErrDuplicate)
	}
	for _, p := range r.s.products {
		if p.Code == product.Code {
			return fmt.Errorf("insert product: código %d: %w", product.Code, domain.ErrDuplicate)
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByDescription busca por descripción sin distinguir mayúsculas.
func (r *ProductRepo) GetByDescription(_ context.Context, description string) (*entity.Product, error) {
	key := inventory.DescriptionKey(description)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *entity.Product
	for _, p := range r.s.products {
		if inventory.DescriptionKey(p.Description) != key {
			continue
		}
		// Con descripciones repetidas gana el código más bajo, como un índice ordenado.
		if found == nil || p.Code < found.Code {
			cp := p
			found = &cp
		}
	}
	return found, nil
}

// Update sobrescribe los campos editables; conserva Code y CreatedAt.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[product.ID]
	if !ok {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	next := *product
	next.Code = cur.Code
	next.CreatedAt = cur.CreatedAt
	r.s.products[product.ID] = next
	return nil
}

// UpdateQuantity fija la cantidad en stock.
func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return fmt.Errorf("update product quantity: %w", domain.ErrNotFound)
	}
	p.Quantity = quantity
	p.UpdatedAt = nowUTC()
	r.s.products[id] = p
	return nil
}

// List devuelve los productos ordenados por descripción (orden de bytes).
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := p
		list = append(list, &cp)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Description != list[j].Description {
			return list[i].Description < list[j].Description
		}
		return list[i].Code < list[j].Code
	})
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	delete(r.s.products, id)
	return nil
}

// NextCode incrementa el contador de códigos. El contador nunca baja del máximo
// existente, así que los códigos de productos borrados no se reutilizan.
func (r *ProductRepo) NextCode(_ context.Context) (int64, error) {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Code > r.s.lastCode {
			r.s.lastCode = p.Code
		}
	}
	r.s.lastCode++
	return r.s.lastCode, nil
}
