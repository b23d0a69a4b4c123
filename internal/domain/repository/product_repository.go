package repository

import (
	"context"

	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetByDescription devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByDescription busca por coincidencia exacta sin distinguir mayúsculas.
	GetByDescription(ctx context.Context, description string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	// List devuelve todos los productos ordenados por descripción ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// NextCode reserva el siguiente código secuencial (contador atómico).
	NextCode(ctx context.Context) (int64, error)
}
