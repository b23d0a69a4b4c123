// Package storage arma el backend de persistencia elegido por STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
	"github.com/jhoicas/almoxarifado-api/internal/infrastructure/memory"
	infmongo "github.com/jhoicas/almoxarifado-api/internal/infrastructure/mongo"
	"github.com/jhoicas/almoxarifado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almoxarifado-api/pkg/config"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

// Backend repositorios y runner de transacciones de un mismo almacenamiento.
type Backend struct {
	Driver      string
	Products    repository.ProductRepository
	Movements   repository.MovementRepository
	Attachments repository.AttachmentRepository
	Blobs       repository.BlobStore
	TxRunner    inventory.TxRunner

	closeFn func(ctx context.Context) error
}

// Close libera conexiones del backend.
func (b *Backend) Close(ctx context.Context) error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn(ctx)
}

// Open conecta con el driver configurado y prepara esquema o índices.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DB, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg.Mongo, log)
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: driver %q no soportado", cfg.Storage.Driver)
	}
}

// NewMemory backend en memoria del proceso.
func NewMemory() *Backend {
	store := memory.NewStore()
	return &Backend{
		Driver:      config.DriverMemory,
		Products:    store.Products(),
		Movements:   store.Movements(),
		Attachments: store.Attachments(),
		Blobs:       store.Blobs(),
		TxRunner:    store,
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Backend, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones PostgreSQL aplicadas")
	}
	return &Backend{
		Driver:      config.DriverPostgres,
		Products:    postgres.NewProductRepository(pool),
		Movements:   postgres.NewMovementRepository(pool),
		Attachments: postgres.NewAttachmentRepository(pool),
		Blobs:       postgres.NewBlobStore(pool),
		TxRunner:    postgres.NewTxRunner(pool),
		closeFn: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Backend, error) {
	client, err := infmongo.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database)
	if err := infmongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	blobs, err := infmongo.NewGridFSStore(db, cfg.Bucket)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if !cfg.Transactions {
		log.Warn().Msg("MongoDB sin transacciones: entradas, salidas y borrados no son atómicos")
	}
	return &Backend{
		Driver:      config.DriverMongo,
		Products:    infmongo.NewProductRepository(db),
		Movements:   infmongo.NewMovementRepository(db),
		Attachments: infmongo.NewAttachmentRepository(db),
		Blobs:       blobs,
		TxRunner:    infmongo.NewTxRunner(client, db, cfg.Transactions),
		closeFn:     client.Disconnect,
	}, nil
}
