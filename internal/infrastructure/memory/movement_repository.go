package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo repositorio de movimientos en memoria.
type MovementRepo struct {
	s    *Store
	inTx bool
}

// Create guarda un movimiento.
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[movement.ID]; ok {
		return fmt.Errorf("create movement: %w", domain.ErrDuplicate)
	}
	r.s.seq++
	r.s.movements[movement.ID] = movementRecord{Movement: *movement, seq: r.s.seq}
	return nil
}

// ListWithProduct une cada movimiento con su producto (nil si ya no existe).
func (r *MovementRepo) ListWithProduct(_ context.Context) ([]*entity.MovementWithProduct, error) {
	r.s.mu.RLock()
	records := make([]movementRecord, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		records = append(records, m)
	}
	products := make(map[string]entity.Product, len(r.s.products))
	for k, v := range r.s.products {
		products[k] = v
	}
	r.s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]*entity.MovementWithProduct, 0, len(records))
	for _, rec := range records {
		view := &entity.MovementWithProduct{Movement: rec.Movement}
		if p, ok := products[rec.ProductID]; ok {
			cp := p
			view.Product = &cp
		}
		out = append(out, view)
	}
	return out, nil
}

// DeleteByProduct elimina los movimientos del producto.
func (r *MovementRepo) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	defer r.s.writeLock(r.inTx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, m := range r.s.movements {
		if m.ProductID == productID {
			delete(r.s.movements, id)
			n++
		}
	}
	return n, nil
}

func nowUTC() time.Time { return time.Now().UTC() }
