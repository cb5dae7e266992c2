package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// IncrementStock y DecrementStock son las únicas vías para tocar el stock;
// nunca se escribe el stock con un valor absoluto calculado fuera de la DB.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	// ListInStock devuelve solo productos con stock > 0 (catálogo de caja).
	ListInStock(ctx context.Context) ([]*entity.Product, error)
	// ListLowStock devuelve hasta limit productos con stock < threshold,
	// ordenados por stock ascendente.
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]*entity.Product, error)
	// IncrementStock suma qty unidades al stock del producto.
	IncrementStock(ctx context.Context, id string, qty int64) error
	// DecrementStock resta qty unidades de forma condicional y atómica:
	// solo aplica si el stock actual alcanza, y devuelve false sin modificar
	// nada cuando no alcanza. Es la barrera contra stock negativo.
	DecrementStock(ctx context.Context, id string, qty int64) (bool, error)
}
