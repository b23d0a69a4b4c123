package inventory_test

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/infrastructure/memory"
)

type fixture struct {
	store    *memory.Store
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
	loc      *time.Location
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, loc)
	store := memory.NewStore()
	return &fixture{
		store:    store,
		register: inventory.NewRegisterMovementUseCase(store, loc).WithClock(func() time.Time { return now }),
		query:    inventory.NewMovementQueryUseCase(store.Movements(), loc),
		loc:      loc,
		now:      now,
	}
}

func (f *fixture) product(t *testing.T, description string) *entity.Product {
	t.Helper()
	p, err := f.store.Products().GetByDescription(context.Background(), description)
	require.NoError(t, err)
	require.NotNil(t, p, "producto %q", description)
	return p
}

func TestRecordEntry_CreaProductoConSiguienteCodigo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{
		Description: "  Papel A4 ", Quantity: 10, Unit: "resma", WarehouseKeeper: "Ana",
	}))

	p := f.product(t, "papel a4")
	assert.Equal(t, int64(1), p.Code)
	assert.Equal(t, "Papel A4", p.Description)
	assert.Equal(t, int64(10), p.Quantity)
	assert.Equal(t, "resma", p.Unit)

	movs, err := f.query.Find(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.Equal(t, f.now, movs[0].OccurredAt)
}

func TestRecordEntry_DescripcionExistenteSinDistinguirMayusculas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{Description: "Luvas", Quantity: 4, WarehouseKeeper: "Ana"}))
	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{Description: "LUVAS", Quantity: 6, WarehouseKeeper: "Ana"}))

	list, err := f.store.Products().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "no debe duplicar el producto")
	assert.Equal(t, int64(10), list[0].Quantity)
	assert.Equal(t, "Luvas", list[0].Description)
}

func TestRecordEntry_FechaDeCalendarioAlMediodiaLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{
		Description: "Caneta", Quantity: 1, WarehouseKeeper: "Ana", OccurredAtDate: "2024-02-29",
	}))
	movs, err := f.query.Find(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, f.loc), movs[0].OccurredAt.In(f.loc))
}

func TestRecordEntry_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]inventory.EntryInput{
		"sin descripción":      {Description: "  ", Quantity: 1, WarehouseKeeper: "Ana"},
		"cantidad cero":        {Description: "X", Quantity: 0, WarehouseKeeper: "Ana"},
		"cantidad negativa":    {Description: "X", Quantity: -3, WarehouseKeeper: "Ana"},
		"sin almacenista":      {Description: "X", Quantity: 1},
		"fecha mal formateada": {Description: "X", Quantity: 1, WarehouseKeeper: "Ana", OccurredAtDate: "10/03/2024"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := f.register.RecordEntry(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	list, err := f.store.Products().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordExit_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.register.RecordExit(context.Background(), inventory.ExitInput{ProductID: "nope", Quantity: 1, WarehouseKeeper: "Ana"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordExit_GuardaSectorYDestinatario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{Description: "Toner", Quantity: 3, WarehouseKeeper: "Ana"}))
	p := f.product(t, "toner")

	require.NoError(t, f.register.RecordExit(ctx, inventory.ExitInput{
		ProductID: p.ID, Quantity: 2, WarehouseKeeper: "Bruno",
		ResponsibleSector: "TI", Recipient: "Carla", OccurredAtDate: "2024-03-09",
	}))

	movs, err := f.query.Find(ctx, dto.MovementFilter{Type: entity.MovementTypeExit})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "TI", movs[0].ResponsibleSector)
	assert.Equal(t, "Carla", movs[0].Recipient)
	assert.Equal(t, int64(1), f.product(t, "toner").Quantity)
}

// Producto "Gloves": alta, entrada, salida rechazada, salida total y borrado en cascada.
func TestEscenarioGloves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	code, err := f.store.Products().NextCode(ctx)
	require.NoError(t, err)
	require.NoError(t, f.store.Products().Create(ctx, &entity.Product{ID: "gloves", Code: code, Description: "Gloves", Quantity: 10}))
	assert.Equal(t, int64(1), code)

	require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{Description: "Gloves", Quantity: 5, WarehouseKeeper: "Ana"}))
	assert.Equal(t, int64(15), f.product(t, "Gloves").Quantity)

	err = f.register.RecordExit(ctx, inventory.ExitInput{ProductID: "gloves", Quantity: 20, WarehouseKeeper: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(15), f.product(t, "Gloves").Quantity)

	require.NoError(t, f.register.RecordExit(ctx, inventory.ExitInput{ProductID: "gloves", Quantity: 15, WarehouseKeeper: "Ana"}))
	assert.Equal(t, int64(0), f.product(t, "Gloves").Quantity)

	summary, err := f.query.Summary(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	assert.Equal(t, dto.MovementSummaryResponse{TotalEntries: 5, TotalExits: 15, Balance: -10}, *summary)

	removed, err := f.store.Movements().DeleteByProduct(ctx, "gloves")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	movs, err := f.query.Find(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestFind_Filtros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	entry := func(desc, date string, qty int64) {
		require.NoError(t, f.register.RecordEntry(ctx, inventory.EntryInput{Description: desc, Quantity: qty, WarehouseKeeper: "Ana", OccurredAtDate: date}))
	}
	entry("Luvas de procedimento", "2024-03-01", 10)
	entry("Álcool 70%", "2024-03-05", 4)
	entry("Luvas de procedimento", "2024-03-08", 2)
	luvas := f.product(t, "luvas de procedimento")
	require.NoError(t, f.register.RecordExit(ctx, inventory.ExitInput{ProductID: luvas.ID, Quantity: 3, WarehouseKeeper: "Ana", OccurredAtDate: "2024-03-08"}))

	movs, err := f.query.Find(ctx, dto.MovementFilter{Product: "LUVAS"})
	require.NoError(t, err)
	assert.Len(t, movs, 3)

	movs, err = f.query.Find(ctx, dto.MovementFilter{From: "2024-03-08"})
	require.NoError(t, err)
	assert.Len(t, movs, 2, "from solo equivale a ese día")

	movs, err = f.query.Find(ctx, dto.MovementFilter{From: "2024-03-02", To: "2024-03-07"})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "Álcool 70%", inventory.ProductLabel(movs[0]))

	s, err := f.query.Summary(ctx, dto.MovementFilter{Product: "luvas"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), s.TotalEntries)
	assert.Equal(t, int64(3), s.TotalExits)
	assert.Equal(t, int64(9), s.Balance)

	_, err = f.query.Find(ctx, dto.MovementFilter{Type: "transfer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.query.Find(ctx, dto.MovementFilter{From: "2024-03-08", To: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_ProductoEliminadoUsaEtiqueta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Movements().Create(ctx, &entity.Movement{
		ID: "m1", Type: entity.MovementTypeEntry, Quantity: 1, WarehouseKeeper: "Ana",
		OccurredAt: f.now, ProductID: "huérfano", CreatedAt: f.now,
	}))

	items, err := f.query.List(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
	assert.Equal(t, inventory.RemovedProductLabel, items[0].ProductLabel)
	assert.Equal(t, "huérfano", items[0].ProductRef)
}
