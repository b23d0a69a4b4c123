// Package attachment gestiona los formularios escaneados (PDF) asociados a un
// intervalo de fechas: binario en el BlobStore y metadatos en el repositorio.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

// ContentTypePDF tipo de contenido con el que se sirven siempre los formularios.
const ContentTypePDF = "application/pdf"

// Disposition modo de entrega del archivo al navegador.
type Disposition string

const (
	DispositionInline     Disposition = "inline"
	DispositionAttachment Disposition = "attachment"
)

// UseCase casos de uso del almacén de formularios.
type UseCase struct {
	repo  repository.AttachmentRepository
	blobs repository.BlobStore
	log   *logger.Logger
	loc   *time.Location
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AttachmentRepository, blobs repository.BlobStore, log *logger.Logger, loc *time.Location) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{repo: repo, blobs: blobs, log: log, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// StoreInput contenido y metadatos de un formulario a guardar.
type StoreInput struct {
	Content          io.Reader
	Size             int64
	OriginalFilename string
	ContentType      string
	DateRangeStart   string
	DateRangeEnd     string
}

// Store escribe primero el binario y, confirmado, los metadatos. Si los metadatos fallan
// se intenta borrar el binario para no dejarlo huérfano. Devuelve el id de los metadatos.
func (uc *UseCase) Store(ctx context.Context, in StoreInput) (string, error) {
	if in.Content == nil || in.Size <= 0 {
		return "", fmt.Errorf("%w: ningún archivo enviado", domain.ErrInvalidInput)
	}
	now := uc.now()
	filename := fmt.Sprintf("%d-%s", now.UnixMilli(), cleanFilename(in.OriginalFilename))
	contentType := in.ContentType
	if contentType == "" {
		contentType = ContentTypePDF
	}

	ref, size, err := uc.blobs.Put(ctx, filename, contentType, in.Content)
	if err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}

	meta := &entity.Attachment{
		ID:             uuid.New().String(),
		FileRef:        ref,
		Filename:       filename,
		ContentType:    contentType,
		Size:           size,
		DateRangeStart: in.DateRangeStart,
		DateRangeEnd:   in.DateRangeEnd,
		UploadedAt:     now,
	}
	if err := uc.repo.Create(ctx, meta); err != nil {
		if derr := uc.blobs.Delete(ctx, ref); derr != nil && !errors.Is(derr, domain.ErrBlobNotFound) {
			uc.log.Error().Err(derr).Str("file_ref", ref).Msg("binario huérfano: no se pudo compensar")
		}
		return "", fmt.Errorf("guardar metadatos: %w", err)
	}
	uc.log.Info().Str("id", meta.ID).Str("filename", filename).Int64("size", size).Msg("formulario guardado")
	return meta.ID, nil
}

// List devuelve los metadatos ordenados por fecha de carga descendente, opcionalmente
// filtrados por día de carga (AAAA-MM-DD, inclusivo).
func (uc *UseCase) List(ctx context.Context, filter dto.DateRangeQuery) ([]dto.AttachmentResponse, error) {
	days, err := inventory.NewDayRange(filter.From, filter.To, uc.loc)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttachmentResponse, 0, len(list))
	for _, a := range list {
		if !days.Contains(a.UploadedAt) {
			continue
		}
		items = append(items, toAttachmentResponse(a))
	}
	return items, nil
}

// Download binario listo para enviarse. El llamador debe cerrar Body.
type Download struct {
	Filename    string
	ContentType string
	Disposition Disposition
	Body        io.ReadCloser
}

// ContentDisposition valor de la cabecera Content-Disposition.
func (d *Download) ContentDisposition() string {
	return mime.FormatMediaType(string(d.Disposition), map[string]string{"filename": d.Filename})
}

// Retrieve resuelve los metadatos y abre el binario. No comprueba antes la existencia
// del binario: un fallo al abrirlo o leerlo se propaga como error de almacenamiento.
func (uc *UseCase) Retrieve(ctx context.Context, id string, disposition Disposition) (*Download, error) {
	if disposition != DispositionInline && disposition != DispositionAttachment {
		return nil, fmt.Errorf("%w: disposición desconocida %q", domain.ErrInvalidInput, disposition)
	}
	meta, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: formulario no encontrado", domain.ErrNotFound)
	}
	body, err := uc.blobs.Open(ctx, meta.FileRef)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo %s: %w", meta.FileRef, err)
	}
	return &Download{
		Filename:    meta.Filename,
		ContentType: ContentTypePDF,
		Disposition: disposition,
		Body:        body,
	}, nil
}

// Delete borra el binario y después los metadatos. Un binario ya inexistente no es error;
// cualquier otro fallo aborta antes de tocar los metadatos.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	meta, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if meta == nil {
		return fmt.Errorf("%w: formulario no encontrado", domain.ErrNotFound)
	}
	if err := uc.blobs.Delete(ctx, meta.FileRef); err != nil {
		if !errors.Is(err, domain.ErrBlobNotFound) {
			return fmt.Errorf("eliminar archivo: %w", err)
		}
		uc.log.Warn().Str("file_ref", meta.FileRef).Msg("binario ya eliminado")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar metadatos: %w", err)
	}
	return nil
}

func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSpace(path.Base(name))
	if name == "" || name == "." || name == "/" {
		return "archivo.pdf"
	}
	return name
}

func toAttachmentResponse(a *entity.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:             a.ID,
		FileRef:        a.FileRef,
		Filename:       a.Filename,
		ContentType:    a.ContentType,
		Size:           a.Size,
		DateRangeStart: a.DateRangeStart,
		DateRangeEnd:   a.DateRangeEnd,
		UploadedAt:     a.UploadedAt,
	}
}
