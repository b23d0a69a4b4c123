package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo metadatos de formularios en MongoDB.
type AttachmentRepo struct {
	attachments *mongo.Collection
}

// NewAttachmentRepository construye el adaptador de metadatos.
func NewAttachmentRepository(db *mongo.Database) *AttachmentRepo {
	return &AttachmentRepo{attachments: db.Collection(attachmentsCollection)}
}

// Create inserta los metadatos.
func (r *AttachmentRepo) Create(ctx context.Context, a *entity.Attachment) error {
	if _, err := r.attachments.InsertOne(ctx, newAttachmentDoc(a)); err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene los metadatos por ID; (nil, nil) si no existe.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*entity.Attachment, error) {
	var doc attachmentDoc
	if err := r.attachments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return doc.toEntity(), nil
}

// List devuelve los metadatos por fecha de carga descendente.
func (r *AttachmentRepo) List(ctx context.Context) ([]*entity.Attachment, error) {
	cur, err := r.attachments.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	var docs []attachmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attachments: %w", err)
	}
	list := make([]*entity.Attachment, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Delete elimina los metadatos; ErrNotFound si no existían.
func (r *AttachmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.attachments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete attachment: %w", domain.ErrNotFound)
	}
	return nil
}
