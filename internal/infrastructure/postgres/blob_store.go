package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore guarda el binario de los formularios en la tabla attachment_blobs (BYTEA).
// Los formularios son PDFs escaneados pequeños que ya llegan completos en memoria.
type BlobStore struct {
	q Querier
}

// NewBlobStore construye el almacén de binarios.
func NewBlobStore(q Querier) *BlobStore {
	return &BlobStore{q: q}
}

// Put lee todo el contenido y lo inserta en una sola sentencia.
func (s *BlobStore) Put(ctx context.Context, filename, contentType string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, fmt.Errorf("leer contenido: %w", err)
	}
	ref := uuid.New().String()
	_, err = s.q.Exec(ctx,
		`INSERT INTO attachment_blobs (id, filename, content_type, size, data, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		ref, filename, contentType, int64(len(data)), data, time.Now(),
	)
	if err != nil {
		return "", 0, fmt.Errorf("insert blob: %w", err)
	}
	return ref, int64(len(data)), nil
}

// Open devuelve el contenido del binario.
func (s *BlobStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if !isUUID(ref) {
		return nil, domain.ErrBlobNotFound
	}
	var data []byte
	err := s.q.QueryRow(ctx, `SELECT data FROM attachment_blobs WHERE id = $1`, ref).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("get blob: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete elimina el binario; ErrBlobNotFound si no existía.
func (s *BlobStore) Delete(ctx context.Context, ref string) error {
	if !isUUID(ref) {
		return domain.ErrBlobNotFound
	}
	cmd, err := s.q.Exec(ctx, `DELETE FROM attachment_blobs WHERE id = $1`, ref)
	if err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBlobNotFound
	}
	return nil
}
