package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItems(ctx context.Context, items []*entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	// List devuelve las ventas con el nombre del cliente ya unido,
	// ordenadas por fecha descendente.
	List(ctx context.Context) ([]*entity.SaleWithClient, error)
	// Delete elimina la venta y sus líneas. No repone stock: las unidades
	// vendidas ya salieron del negocio.
	Delete(ctx context.Context, id string) error
}
