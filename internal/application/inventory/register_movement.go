package inventory

import (
	"context"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
)

// RecordEntryFromRequest adapta el body HTTP de POST /entry al caso de uso.
func (uc *RegisterMovementUseCase) RecordEntryFromRequest(ctx context.Context, in dto.EntryRequest) error {
	return uc.RecordEntry(ctx, EntryInput{
		Description:     in.Description,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		WarehouseKeeper: in.WarehouseKeeper,
		OccurredAtDate:  in.OccurredAtDate,
	})
}

// RecordExitFromRequest adapta el body HTTP de POST /exit al caso de uso.
func (uc *RegisterMovementUseCase) RecordExitFromRequest(ctx context.Context, in dto.ExitRequest) error {
	return uc.RecordExit(ctx, ExitInput{
		ProductID:         in.ProductRef,
		Quantity:          in.Quantity,
		WarehouseKeeper:   in.WarehouseKeeper,
		OccurredAtDate:    in.OccurredAtDate,
		ResponsibleSector: in.ResponsibleSector,
		Recipient:         in.Recipient,
	})
}
