package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

const attachmentColumns = `id::text, file_ref, filename, content_type, size, date_range_start, date_range_end, uploaded_at`

// AttachmentRepo metadatos de formularios sobre PostgreSQL.
type AttachmentRepo struct {
	q Querier
}

// NewAttachmentRepository construye el adaptador.
func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// Create persiste los metadatos.
func (r *AttachmentRepo) Create(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO attachments (id, file_ref, filename, content_type, size, date_range_start, date_range_end, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.FileRef, a.Filename, a.ContentType, a.Size, a.DateRangeStart, a.DateRangeEnd, a.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("create attachment: %w", err)
	}
	return nil
}

// GetByID obtiene los metadatos por ID.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*entity.Attachment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE id = $1`
	a, err := scanAttachment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return a, nil
}

// List devuelve los metadatos por fecha de carga descendente.
func (r *AttachmentRepo) List(ctx context.Context) ([]*entity.Attachment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+attachmentColumns+` FROM attachments ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Attachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina los metadatos.
func (r *AttachmentRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return fmt.Errorf("delete attachment: %w", domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete attachment: %w", domain.ErrNotFound)
	}
	return nil
}

func scanAttachment(row pgx.Row) (*entity.Attachment, error) {
	var a entity.Attachment
	if err := row.Scan(&a.ID, &a.FileRef, &a.Filename, &a.ContentType, &a.Size,
		&a.DateRangeStart, &a.DateRangeEnd, &a.UploadedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
