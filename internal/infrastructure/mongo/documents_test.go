package mongo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

func TestProductDoc_GuardaClaveDeDescripcion(t *testing.T) {
	p := &entity.Product{ID: "p1", Code: 3, Description: "  Luvas ", Quantity: 7}
	doc := newProductDoc(p)
	assert.Equal(t, "luvas", doc.DescriptionKey)

	back := doc.toEntity()
	assert.Equal(t, p.Code, back.Code)
	assert.Equal(t, p.Description, back.Description)
}

func TestMovementWithProductDoc_SinProducto(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: "m1"},
		{Key: "type", Value: entity.MovementTypeExit},
		{Key: "quantity", Value: int64(2)},
		{Key: "warehouse_keeper", Value: "Ana"},
		{Key: "occurred_at", Value: now},
		{Key: "product_id", Value: "borrado"},
		{Key: "created_at", Value: now},
	})
	require.NoError(t, err)

	var doc movementWithProductDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Nil(t, doc.Product)
	m := doc.Movement.toEntity()
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "borrado", m.ProductID)
	assert.Equal(t, int64(2), m.Quantity)
}

func TestCountingReader(t *testing.T) {
	c := &countingReader{r: strings.NewReader("%PDF-1.4 contenido")}
	buf := make([]byte, 4)
	for {
		if _, err := c.Read(buf); err != nil {
			break
		}
	}
	assert.Equal(t, int64(len("%PDF-1.4 contenido")), c.n)
}
