package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/report"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

func TestMovementsPDF(t *testing.T) {
	g := NewMarotoReportGenerator("Almoxarifado")
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	data := report.MovementReport{
		GeneratedAt: now,
		Filter:      dto.MovementFilter{Product: "luvas", From: "2024-03-01", To: "2024-03-10"},
		Summary:     dto.MovementSummaryResponse{TotalEntries: 10, TotalExits: 3, Balance: 7},
		Movements: []*entity.MovementWithProduct{
			{
				Movement: entity.Movement{ID: "m1", Type: entity.MovementTypeEntry, Quantity: 10, WarehouseKeeper: "Ana", OccurredAt: now},
				Product:  &entity.Product{ID: "p1", Code: 1, Description: "Luvas"},
			},
			{
				Movement: entity.Movement{ID: "m2", Type: entity.MovementTypeExit, Quantity: 3, WarehouseKeeper: "Ana", Recipient: "Bruno", OccurredAt: now},
			},
		},
		Location: time.UTC,
	}

	out, err := g.MovementsPDF(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestStockPDF_SinProductos(t *testing.T) {
	g := NewMarotoReportGenerator("")
	out, err := g.StockPDF(context.Background(), report.StockReport{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0", formatQuantity(0))
	assert.Equal(t, "999", formatQuantity(999))
	assert.Equal(t, "25.000", formatQuantity(25000))
	assert.Equal(t, "1.000.000", formatQuantity(1000000))
	assert.Equal(t, "-1.200", formatQuantity(-1200))
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "Filtros: ninguno", describeFilter(report.MovementReport{}))
	got := describeFilter(report.MovementReport{Filter: dto.MovementFilter{Type: entity.MovementTypeExit, From: "2024-03-01"}})
	assert.Equal(t, "Filtros: Tipo: salidas   |   Día: 2024-03-01", got)
}
