package repository

import (
	"context"
	"io"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// AttachmentRepository persiste los metadatos de formularios.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	GetByID(ctx context.Context, id string) (*entity.Attachment, error)
	// List devuelve los metadatos ordenados por UploadedAt descendente.
	List(ctx context.Context) ([]*entity.Attachment, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore guarda el contenido binario de los formularios.
// Open y Delete devuelven domain.ErrBlobNotFound si la referencia no existe.
type BlobStore interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (ref string, size int64, err error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}
