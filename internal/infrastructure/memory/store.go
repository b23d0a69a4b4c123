// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para desarrollo local (STORAGE_DRIVER=memory) y como almacenamiento de los tests;
// los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type movementRecord struct {
	entity.Movement
	seq int64
}

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	txMu        sync.Mutex
	products    map[string]entity.Product
	movements   map[string]movementRecord
	attachments map[string]entity.Attachment
	blobs       map[string]blob
	lastCode    int64
	seq         int64
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		products:    make(map[string]entity.Product),
		movements:   make(map[string]movementRecord),
		attachments: make(map[string]entity.Attachment),
		blobs:       make(map[string]blob),
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements devuelve el repositorio de movimientos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Attachments devuelve el repositorio de metadatos de formularios.
func (s *Store) Attachments() *AttachmentRepo { return &AttachmentRepo{s: s} }

// Blobs devuelve el almacén de binarios.
func (s *Store) Blobs() *BlobStore { return &BlobStore{s: s} }

type snapshot struct {
	products  map[string]entity.Product
	movements map[string]movementRecord
	lastCode  int64
	seq       int64
}

// Run serializa las transacciones y restaura productos y movimientos si fn falla.
// Las escrituras fuera de una transacción esperan a que termine, así el restore no las pisa.
func (s *Store) Run(ctx context.Context, fn func(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, &ProductRepo{s: s, inTx: true}, &MovementRepo{s: s, inTx: true}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products:  make(map[string]entity.Product, len(s.products)),
		movements: make(map[string]movementRecord, len(s.movements)),
		lastCode:  s.lastCode,
		seq:       s.seq,
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.movements {
		snap.movements[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.movements = snap.movements
	s.lastCode = snap.lastCode
	s.seq = snap.seq
}

// writeLock toma txMu para las escrituras hechas fuera de Run. Dentro de Run el lock ya
// lo tiene la transacción.
func (s *Store) writeLock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}
