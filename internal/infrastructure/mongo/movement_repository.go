package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre MongoDB.
type MovementRepo struct {
	movements *mongo.Collection
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(db *mongo.Database) *MovementRepo {
	return &MovementRepo{movements: db.Collection(movementsCollection)}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if _, err := r.movements.InsertOne(ctx, newMovementDoc(m)); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListWithProduct devuelve los movimientos con su producto ($lookup), más recientes primero.
// Un movimiento cuyo producto ya no existe queda con Product nil.
func (r *MovementRepo) ListWithProduct(ctx context.Context) ([]*entity.MovementWithProduct, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "occurred_at", Value: -1}, {Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productsCollection},
			{Key: "localField", Value: "product_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "product"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$product"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
	cur, err := r.movements.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	var docs []movementWithProductDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movements: %w", err)
	}
	list := make([]*entity.MovementWithProduct, 0, len(docs))
	for _, d := range docs {
		item := &entity.MovementWithProduct{Movement: d.Movement.toEntity()}
		if d.Product != nil {
			item.Product = d.Product.toEntity()
		}
		list = append(list, item)
	}
	return list, nil
}

// DeleteByProduct elimina todos los movimientos del producto y devuelve cuántos borró.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	res, err := r.movements.DeleteMany(ctx, bson.D{{Key: "product_id", Value: productID}})
	if err != nil {
		return 0, fmt.Errorf("delete movements by product: %w", err)
	}
	return res.DeletedCount, nil
}
