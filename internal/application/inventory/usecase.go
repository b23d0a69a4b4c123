package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas y salidas de stock. Cada operación corre
// dentro de TxRunner.Run: si falla el registro del movimiento, el ajuste de cantidad
// no se confirma.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	loc      *time.Location
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso. loc es la zona horaria en la que
// se interpretan las fechas de calendario de los movimientos.
func NewRegisterMovementUseCase(txRunner TxRunner, loc *time.Location) *RegisterMovementUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &RegisterMovementUseCase{txRunner: txRunner, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RegisterMovementUseCase) WithClock(now func() time.Time) *RegisterMovementUseCase {
	uc.now = now
	return uc
}

// EntryInput entrada para registrar una entrada de stock.
type EntryInput struct {
	Description     string
	Quantity        int64
	Unit            string
	WarehouseKeeper string
	OccurredAtDate  string
}

// ExitInput entrada para registrar una salida de stock.
type ExitInput struct {
	ProductID         string
	Quantity          int64
	WarehouseKeeper   string
	OccurredAtDate    string
	ResponsibleSector string
	Recipient         string
}

// RecordEntry suma la cantidad al producto cuya descripción coincide (sin distinguir
// mayúsculas) o crea uno nuevo con el siguiente código, y registra el movimiento de entrada.
func (uc *RegisterMovementUseCase) RecordEntry(ctx context.Context, input EntryInput) error {
	description := inventory.NormalizeDescription(input.Description)
	keeper := strings.TrimSpace(input.WarehouseKeeper)
	if description == "" || input.Quantity <= 0 || keeper == "" {
		return fmt.Errorf("%w: description, quantity y warehouseKeeper son obligatorios", domain.ErrInvalidInput)
	}
	now := uc.now()
	occurredAt, err := inventory.ResolveOccurredAt(input.OccurredAtDate, now, uc.loc)
	if err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByDescription(ctx, description)
		if err != nil {
			return err
		}
		if product != nil {
			qty, err := inventory.Deposit(product.Quantity, input.Quantity)
			if err != nil {
				return err
			}
			if err := productRepo.UpdateQuantity(ctx, product.ID, qty); err != nil {
				return err
			}
		} else {
			code, err := productRepo.NextCode(ctx)
			if err != nil {
				return err
			}
			product = &entity.Product{
				ID:          uuid.New().String(),
				Code:        code,
				Description: description,
				Quantity:    input.Quantity,
				Unit:        strings.TrimSpace(input.Unit),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
		}

		return movementRepo.Create(ctx, &entity.Movement{
			ID:              uuid.New().String(),
			Type:            entity.MovementTypeEntry,
			Quantity:        input.Quantity,
			WarehouseKeeper: keeper,
			OccurredAt:      occurredAt,
			ProductID:       product.ID,
			CreatedAt:       now,
		})
	})
}

// RecordExit descuenta la cantidad del producto y registra el movimiento de salida.
// Devuelve domain.ErrInsufficientStock si la salida supera el stock; en ese caso
// la cantidad no cambia.
func (uc *RegisterMovementUseCase) RecordExit(ctx context.Context, input ExitInput) error {
	productID := strings.TrimSpace(input.ProductID)
	keeper := strings.TrimSpace(input.WarehouseKeeper)
	if productID == "" || input.Quantity <= 0 || keeper == "" {
		return fmt.Errorf("%w: productRef, quantity y warehouseKeeper son obligatorios", domain.ErrInvalidInput)
	}
	now := uc.now()
	occurredAt, err := inventory.ResolveOccurredAt(input.OccurredAtDate, now, uc.loc)
	if err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
		}
		qty, err := inventory.Withdraw(product.Quantity, input.Quantity)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, qty); err != nil {
			return err
		}

		return movementRepo.Create(ctx, &entity.Movement{
			ID:                uuid.New().String(),
			Type:              entity.MovementTypeExit,
			Quantity:          input.Quantity,
			WarehouseKeeper:   keeper,
			ResponsibleSector: strings.TrimSpace(input.ResponsibleSector),
			Recipient:         strings.TrimSpace(input.Recipient),
			OccurredAt:        occurredAt,
			ProductID:         product.ID,
			CreatedAt:         now,
		})
	})
}
