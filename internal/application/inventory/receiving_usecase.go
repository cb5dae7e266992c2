package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
	"github.com/erp-pro/erp-pro-api/pkg/search"
)

// ReceivingUseCase recepción de mercadería: registrar lotes sumando stock y
// eliminar lotes restando stock, siempre de forma atómica.
type ReceivingUseCase struct {
	tx       TxRunner
	batches  repository.BatchRepository
	products repository.ProductRepository
}

// NewReceivingUseCase construye el caso de uso.
func NewReceivingUseCase(tx TxRunner, batches repository.BatchRepository, products repository.ProductRepository) *ReceivingUseCase {
	return &ReceivingUseCase{tx: tx, batches: batches, products: products}
}

// Receive registra un lote y suma su cantidad al stock del producto en una
// sola transacción: o quedan ambos efectos o ninguno.
func (uc *ReceivingUseCase) Receive(ctx context.Context, in dto.ReceiveBatchRequest) (*dto.BatchResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	batch := &entity.Batch{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		Cost:         in.Cost,
		ReceivedDate: time.Now(),
	}

	err = uc.tx.Run(ctx, func(batches repository.BatchRepository, products repository.ProductRepository) error {
		if err := batches.Create(ctx, batch); err != nil {
			return err
		}
		return products.IncrementStock(ctx, batch.ProductID, batch.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return &dto.BatchResponse{
		ID:              batch.ID,
		ProductID:       batch.ProductID,
		ProductName:     product.Name,
		ProductCategory: product.Category,
		Quantity:        batch.Quantity,
		Cost:            batch.Cost,
		ReceivedDate:    batch.ReceivedDate,
	}, nil
}

// DeleteBatch revierte una recepción: elimina el lote y resta su cantidad
// del stock. Si las unidades del lote ya se vendieron (el stock actual no
// alcanza para restar), la reversa se rechaza con ErrStockConflict y no se
// modifica nada.
func (uc *ReceivingUseCase) DeleteBatch(ctx context.Context, id string) error {
	batch, err := uc.batches.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(batches repository.BatchRepository, products repository.ProductRepository) error {
		ok, err := products.DecrementStock(ctx, batch.ProductID, batch.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrStockConflict
		}
		return batches.Delete(ctx, batch.ID)
	})
}

// ListBatches devuelve el historial de recepciones, con filtro opcional por
// nombre o categoría del producto.
func (uc *ReceivingUseCase) ListBatches(ctx context.Context, query string) (*dto.BatchListResponse, error) {
	batches, err := uc.batches.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		if query != "" && !search.ContainsAny(query, b.ProductName, b.ProductCategory) {
			continue
		}
		items = append(items, dto.BatchResponse{
			ID:              b.ID,
			ProductID:       b.ProductID,
			ProductName:     b.ProductName,
			ProductCategory: b.ProductCategory,
			Quantity:        b.Quantity,
			Cost:            b.Cost,
			ReceivedDate:    b.ReceivedDate,
		})
	}
	return &dto.BatchListResponse{Items: items, Total: len(items)}, nil
}
