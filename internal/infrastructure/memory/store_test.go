package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

func newProduct(id string, code int64, description string) *entity.Product {
	return &entity.Product{ID: id, Code: code, Description: description, Quantity: 1}
}

func TestRun_RestauraEstadoSiFalla(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, newProduct("p1", 1, "Luvas")))

	boom := errors.New("boom")
	err := s.Run(ctx, func(ctx context.Context, products repository.ProductRepository, movements repository.MovementRepository) error {
		require.NoError(t, products.UpdateQuantity(ctx, "p1", 99))
		require.NoError(t, movements.Create(ctx, &entity.Movement{ID: "m1", Type: entity.MovementTypeEntry, Quantity: 98, ProductID: "p1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Quantity)
	movs, err := s.Movements().ListWithProduct(ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestRun_RollbackConservaEscriturasExternas(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, newProduct("p1", 1, "Luvas")))
	require.NoError(t, s.Products().Create(ctx, newProduct("p2", 2, "Caneta")))

	started, release := make(chan struct{}), make(chan struct{})
	boom := errors.New("stock insuficiente")
	txErr := make(chan error, 1)
	go func() {
		txErr <- s.Run(ctx, func(ctx context.Context, products repository.ProductRepository, _ repository.MovementRepository) error {
			if err := products.UpdateQuantity(ctx, "p1", 99); err != nil {
				return err
			}
			close(started)
			<-release
			return boom
		})
	}()
	<-started

	edited := newProduct("p2", 2, "Caneta")
	edited.Quantity = 50
	edited.Notes = "editado"
	updErr := make(chan error, 1)
	go func() { updErr <- s.Products().Update(ctx, edited) }()

	close(release)
	assert.ErrorIs(t, <-txErr, boom)
	require.NoError(t, <-updErr)

	p2, err := s.Products().GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "editado", p2.Notes)
	assert.Equal(t, int64(50), p2.Quantity)

	p1, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p1.Quantity)
}

func TestNextCode_NoReutilizaCodigos(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repo := s.Products()

	c1, err := repo.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c1)
	require.NoError(t, repo.Create(ctx, newProduct("p1", c1, "A")))

	require.NoError(t, repo.Create(ctx, newProduct("p7", 7, "B")))
	c2, err := repo.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), c2)

	require.NoError(t, repo.Delete(ctx, "p7"))
	c3, err := repo.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), c3)

	err = repo.Create(ctx, newProduct("px", 1, "C"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductList_OrdenDeBytes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for i, d := range []string{"caneta", "Luvas", "Álcool", "Borracha"} {
		require.NoError(t, s.Products().Create(ctx, newProduct(d, int64(i+1), d)))
	}
	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, p := range list {
		got = append(got, p.Description)
	}
	assert.Equal(t, []string{"Borracha", "Luvas", "caneta", "Álcool"}, got)
}

func TestListWithProduct_OrdenYProductoEliminado(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, newProduct("p1", 1, "Luvas")))

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		{ID: "old", Type: entity.MovementTypeEntry, Quantity: 1, ProductID: "p1", OccurredAt: day.AddDate(0, 0, -1), CreatedAt: created},
		{ID: "first", Type: entity.MovementTypeEntry, Quantity: 1, ProductID: "p1", OccurredAt: day, CreatedAt: created},
		{ID: "second", Type: entity.MovementTypeExit, Quantity: 1, ProductID: "p1", OccurredAt: day, CreatedAt: created},
		{ID: "later", Type: entity.MovementTypeEntry, Quantity: 1, ProductID: "gone", OccurredAt: day, CreatedAt: created.Add(time.Hour)},
	}
	for _, m := range movs {
		require.NoError(t, s.Movements().Create(ctx, m))
	}

	list, err := s.Movements().ListWithProduct(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"later", "second", "first", "old"}, ids)
	assert.Nil(t, list[0].Product)
	require.NotNil(t, list[1].Product)
	assert.Equal(t, "Luvas", list[1].Product.Description)

	n, err := s.Movements().DeleteByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestBlobStore_NoEncontrado(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, err := s.Blobs().Open(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.ErrorIs(t, s.Blobs().Delete(ctx, "nada"), domain.ErrBlobNotFound)
}
