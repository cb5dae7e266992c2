package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes de recepción.
// Create y Delete se ejecutan siempre dentro de la misma transacción que el
// ajuste de stock correspondiente.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	GetByID(ctx context.Context, id string) (*entity.Batch, error)
	Delete(ctx context.Context, id string) error
	// List devuelve los lotes con nombre y categoría del producto ya unidos,
	// ordenados por fecha de recepción descendente.
	List(ctx context.Context) ([]*entity.BatchWithProduct, error)
}
