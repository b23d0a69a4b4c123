package report

import (
	"context"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// MovementReport datos del informe de historial de movimientos.
type MovementReport struct {
	GeneratedAt time.Time
	Filter      dto.MovementFilter
	Summary     dto.MovementSummaryResponse
	Movements   []*entity.MovementWithProduct
	Location    *time.Location
}

// StockReport datos del informe de stock actual.
type StockReport struct {
	GeneratedAt time.Time
	Products    []*entity.Product
	Location    *time.Location
}

// Generator produce los PDF de los informes (puerto implementado en infrastructure/pdf).
type Generator interface {
	MovementsPDF(ctx context.Context, data MovementReport) ([]byte, error)
	StockPDF(ctx context.Context, data StockReport) ([]byte, error)
}
