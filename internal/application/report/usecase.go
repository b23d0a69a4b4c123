// Package report exporta a PDF el historial de movimientos y el stock actual.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// Nombres de archivo sugeridos para la descarga.
const (
	MovementsFilename = "historial_movimientos.pdf"
	StockFilename     = "stock_actual.pdf"
)

// UseCase arma los datos de cada informe y delega el render en Generator.
type UseCase struct {
	movements   *inventory.MovementQueryUseCase
	productRepo repository.ProductRepository
	generator   Generator
	loc         *time.Location
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	movements *inventory.MovementQueryUseCase,
	productRepo repository.ProductRepository,
	generator Generator,
	loc *time.Location,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{movements: movements, productRepo: productRepo, generator: generator, loc: loc, now: time.Now}
}

// Movements genera el PDF del historial filtrado con sus totales.
func (uc *UseCase) Movements(ctx context.Context, filter dto.MovementFilter) ([]byte, error) {
	list, err := uc.movements.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.MovementsPDF(ctx, MovementReport{
		GeneratedAt: uc.now(),
		Filter:      filter,
		Summary:     inventory.Summarize(list),
		Movements:   list,
		Location:    uc.loc,
	})
	if err != nil {
		return nil, fmt.Errorf("informe de movimientos: %w", err)
	}
	return pdf, nil
}

// Stock genera el PDF del stock actual ordenado por descripción.
func (uc *UseCase) Stock(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.StockPDF(ctx, StockReport{
		GeneratedAt: uc.now(),
		Products:    products,
		Location:    uc.loc,
	})
	if err != nil {
		return nil, fmt.Errorf("informe de stock: %w", err)
	}
	return pdf, nil
}
