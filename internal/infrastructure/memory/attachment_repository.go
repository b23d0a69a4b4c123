package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var (
	_ repository.AttachmentRepository = (*AttachmentRepo)(nil)
	_ repository.BlobStore            = (*BlobStore)(nil)
)

// AttachmentRepo metadatos de formularios en memoria.
type AttachmentRepo struct {
	s *Store
}

// Create guarda los metadatos.
func (r *AttachmentRepo) Create(_ context.Context, a *entity.Attachment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.attachments[a.ID]; ok {
		return fmt.Errorf("create attachment: %w", domain.ErrDuplicate)
	}
	r.s.attachments[a.ID] = *a
	return nil
}

// GetByID obtiene los metadatos por ID.
func (r *AttachmentRepo) GetByID(_ context.Context, id string) (*entity.Attachment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.attachments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// List devuelve los metadatos por fecha de carga descendente.
func (r *AttachmentRepo) List(_ context.Context) ([]*entity.Attachment, error) {
	r.s.mu.RLock()
	list := make([]*entity.Attachment, 0, len(r.s.attachments))
	for _, a := range r.s.attachments {
		cp := a
		list = append(list, &cp)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].UploadedAt.After(list[j].UploadedAt)
	})
	return list, nil
}

// Delete elimina los metadatos.
func (r *AttachmentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.attachments[id]; !ok {
		return fmt.Errorf("delete attachment: %w", domain.ErrNotFound)
	}
	delete(r.s.attachments, id)
	return nil
}

type blob struct {
	filename    string
	contentType string
	data        []byte
}

// BlobStore binarios en memoria.
type BlobStore struct {
	s *Store
}

// Put lee todo el contenido y lo guarda bajo una referencia nueva.
func (b *BlobStore) Put(_ context.Context, filename, contentType string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, fmt.Errorf("leer contenido: %w", err)
	}
	ref := uuid.New().String()
	b.s.mu.Lock()
	b.s.blobs[ref] = blob{filename: filename, contentType: contentType, data: data}
	b.s.mu.Unlock()
	return ref, int64(len(data)), nil
}

// Open devuelve un lector sobre una copia del contenido.
func (b *BlobStore) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	b.s.mu.RLock()
	bl, ok := b.s.blobs[ref]
	b.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(bl.data))), nil
}

// Delete elimina el binario.
func (b *BlobStore) Delete(_ context.Context, ref string) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.blobs[ref]; !ok {
		return domain.ErrBlobNotFound
	}
	delete(b.s.blobs, ref)
	return nil
}
