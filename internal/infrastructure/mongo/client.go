// Package mongo implementa los puertos de persistencia sobre MongoDB: colecciones para
// productos, movimientos y metadatos, y GridFS como almacén de binarios.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/almoxarifado-api/pkg/config"
)

// Nombres de colecciones.
const (
	productsCollection    = "products"
	movementsCollection   = "movements"
	attachmentsCollection = "attachments"
	countersCollection    = "counters"
)

// NewClient conecta con MongoDB y verifica el primario.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second).
		SetAppName("almoxarifado-api")
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices (idempotente) y alinea el contador de códigos con el
// máximo código existente, para bases migradas desde el sistema anterior.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(productsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "description_key", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("índices de products: %w", err)
	}
	_, err = db.Collection(movementsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
		{Keys: bson.D{{Key: "occurred_at", Value: -1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("índices de movements: %w", err)
	}
	_, err = db.Collection(attachmentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uploaded_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("índices de attachments: %w", err)
	}
	return seedCodeCounter(ctx, db)
}

func seedCodeCounter(ctx context.Context, db *mongo.Database) error {
	var last struct {
		Code int64 `bson:"code"`
	}
	err := db.Collection(productsCollection).FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "code", Value: -1}}).SetProjection(bson.D{{Key: "code", Value: 1}}),
	).Decode(&last)
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("máximo código: %w", err)
	}
	_, err = db.Collection(countersCollection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: productCodeCounter}},
		bson.D{{Key: "$max", Value: bson.D{{Key: "seq", Value: last.Code}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("sembrar contador: %w", err)
	}
	return nil
}
