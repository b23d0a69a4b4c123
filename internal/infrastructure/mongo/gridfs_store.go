package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.BlobStore = (*GridFSStore)(nil)

// GridFSStore guarda los PDF en un bucket GridFS. La referencia es el ObjectID en hex.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

// NewGridFSStore abre (o crea en la primera escritura) el bucket indicado.
func NewGridFSStore(db *mongo.Database, bucketName string) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

// Put sube el contenido completo y devuelve el id del archivo.
func (s *GridFSStore) Put(ctx context.Context, filename, contentType string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	counter := &countingReader{r: r}
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	id, err := s.bucket.UploadFromStream(filename, counter, opts)
	if err != nil {
		return "", 0, fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), counter.n, nil
}

// Open abre un stream de lectura del archivo.
func (s *GridFSStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, domain.ErrBlobNotFound
	}
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}
	return stream, nil
}

// Delete borra el archivo y sus chunks.
func (s *GridFSStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return domain.ErrBlobNotFound
	}
	if err := s.bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return domain.ErrBlobNotFound
		}
		return fmt.Errorf("gridfs delete: %w", err)
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
