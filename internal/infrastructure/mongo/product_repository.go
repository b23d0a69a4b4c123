package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productCodeCounter _id del documento contador de códigos.
const productCodeCounter = "product_code"

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	products *mongo.Collection
	counters *mongo.Collection
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{
		products: db.Collection(productsCollection),
		counters: db.Collection(countersCollection),
	}
}

// Create persiste un nuevo producto y lleva el contador al menos hasta su código
// (importaciones con códigos heredados).
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if _, err := r.products.InsertOne(ctx, newProductDoc(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert product: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	_, err := r.counters.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: productCodeCounter}},
		bson.D{{Key: "$max", Value: bson.D{{Key: "seq", Value: p.Code}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("sync code counter: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}}, options.FindOne())
}

// GetByDescription busca por la clave plegada de la descripción. Con duplicados heredados
// gana el de menor código.
func (r *ProductRepo) GetByDescription(ctx context.Context, description string) (*entity.Product, error) {
	filter := bson.D{{Key: "description_key", Value: inventory.DescriptionKey(description)}}
	return r.findOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "code", Value: 1}}))
}

func (r *ProductRepo) findOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (*entity.Product, error) {
	var doc productDoc
	if err := r.products.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toEntity(), nil
}

// Update sobrescribe los campos editables. Code y CreatedAt no se tocan.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	set := bson.D{
		{Key: "description", Value: p.Description},
		{Key: "description_key", Value: inventory.DescriptionKey(p.Description)},
		{Key: "quantity", Value: p.Quantity},
		{Key: "unit", Value: p.Unit},
		{Key: "supplementary_description", Value: p.SupplementaryDescription},
		{Key: "expiry", Value: p.Expiry},
		{Key: "supplier", Value: p.Supplier},
		{Key: "process_number", Value: p.ProcessNumber},
		{Key: "notes", Value: p.Notes},
		{Key: "updated_at", Value: p.UpdatedAt},
	}
	res, err := r.products.UpdateByID(ctx, p.ID, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	return nil
}

// UpdateQuantity fija la cantidad en stock.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "quantity", Value: quantity},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
	res, err := r.products.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update product quantity: %w", domain.ErrNotFound)
	}
	return nil
}

// List lista todos los productos por descripción (comparación binaria) y código.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "description", Value: 1}, {Key: "code", Value: 1}})
	cur, err := r.products.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.products.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	return nil
}

// NextCode incrementa de forma atómica el contador sembrado por EnsureIndexes.
func (r *ProductRepo) NextCode(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: productCodeCounter}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next product code: %w", err)
	}
	return counter.Seq, nil
}
