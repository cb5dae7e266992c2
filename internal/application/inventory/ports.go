// Package inventory implementa la recepción de mercadería por lotes y su
// reversa. Todo movimiento de stock ocurre dentro de una transacción.
package inventory

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, entregando repositorios
// ligados a esa transacción. Si fn devuelve error se hace rollback completo.
type TxRunner interface {
	Run(ctx context.Context, fn func(batches repository.BatchRepository, products repository.ProductRepository) error) error
}
