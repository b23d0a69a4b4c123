package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// RemovedProductLabel etiqueta de los movimientos cuyo producto ya no existe.
const RemovedProductLabel = "Producto eliminado"

// MovementQueryUseCase consultas del historial de movimientos.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
	loc          *time.Location
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movementRepo repository.MovementRepository, loc *time.Location) *MovementQueryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &MovementQueryUseCase{movementRepo: movementRepo, loc: loc}
}

// Find devuelve los movimientos con producto que cumplen el filtro, en el orden del
// repositorio (fecha del movimiento y creación descendentes).
func (uc *MovementQueryUseCase) Find(ctx context.Context, filter dto.MovementFilter) ([]*entity.MovementWithProduct, error) {
	typ := strings.TrimSpace(filter.Type)
	if typ != "" && !entity.IsValidMovementType(typ) {
		return nil, fmt.Errorf("%w: type debe ser %q o %q", domain.ErrInvalidInput, entity.MovementTypeEntry, entity.MovementTypeExit)
	}
	days, err := inventory.NewDayRange(filter.From, filter.To, uc.loc)
	if err != nil {
		return nil, err
	}
	all, err := uc.movementRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.TrimSpace(filter.Product)
	out := make([]*entity.MovementWithProduct, 0, len(all))
	for _, m := range all {
		if typ != "" && m.Type != typ {
			continue
		}
		if !days.Contains(m.OccurredAt) {
			continue
		}
		if term != "" && !inventory.ContainsFold(ProductLabel(m), term) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// List devuelve el historial filtrado listo para la API.
func (uc *MovementQueryUseCase) List(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, error) {
	list, err := uc.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return items, nil
}

// Summary totaliza entradas, salidas y saldo del historial filtrado.
func (uc *MovementQueryUseCase) Summary(ctx context.Context, filter dto.MovementFilter) (*dto.MovementSummaryResponse, error) {
	list, err := uc.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	s := Summarize(list)
	return &s, nil
}

// Summarize calcula los totales de una lista de movimientos.
func Summarize(list []*entity.MovementWithProduct) dto.MovementSummaryResponse {
	var s dto.MovementSummaryResponse
	for _, m := range list {
		switch m.Type {
		case entity.MovementTypeEntry:
			s.TotalEntries += m.Quantity
		case entity.MovementTypeExit:
			s.TotalExits += m.Quantity
		}
	}
	s.Balance = s.TotalEntries - s.TotalExits
	return s
}

// ProductLabel texto del producto de un movimiento; RemovedProductLabel si ya no existe.
func ProductLabel(m *entity.MovementWithProduct) string {
	if m.Product == nil {
		return RemovedProductLabel
	}
	return m.Product.Description
}

// ToMovementResponse convierte la vista de dominio en DTO.
func ToMovementResponse(m *entity.MovementWithProduct) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:                m.ID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		WarehouseKeeper:   m.WarehouseKeeper,
		ResponsibleSector: m.ResponsibleSector,
		Recipient:         m.Recipient,
		OccurredAt:        m.OccurredAt,
		ProductRef:        m.ProductID,
		ProductLabel:      ProductLabel(m),
		CreatedAt:         m.CreatedAt,
	}
	if m.Product != nil {
		out.Product = &dto.MovementProductResponse{
			ID:          m.Product.ID,
			Code:        m.Product.Code,
			Description: m.Product.Description,
		}
	}
	return out
}
