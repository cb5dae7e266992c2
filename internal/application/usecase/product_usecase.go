package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
	"github.com/erp-pro/erp-pro-api/pkg/search"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo lo mueven
// recepciones y ventas; Update nunca lo toca.
type ProductUseCase struct {
	repo              repository.ProductRepository
	lowStockThreshold int64
	lowStockLimit     int
}

// NewProductUseCase construye el caso de uso. threshold y limit acotan el
// listado de productos por agotarse.
func NewProductUseCase(repo repository.ProductRepository, lowStockThreshold int64, lowStockLimit int) *ProductUseCase {
	return &ProductUseCase{repo: repo, lowStockThreshold: lowStockThreshold, lowStockLimit: lowStockLimit}
}

// Create crea un nuevo producto con su stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar el stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve el catálogo completo, con filtro de búsqueda opcional por
// nombre o categoría (insensible a mayúsculas y acentos).
func (uc *ProductUseCase) List(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if query != "" && !search.ContainsAny(query, p.Name, p.Category) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// ListInStock devuelve solo productos vendibles (stock > 0), para caja.
func (uc *ProductUseCase) ListInStock(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListInStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if query != "" && !search.ContainsAny(query, p.Name, p.Category) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// ListLowStock devuelve los productos por agotarse (stock bajo el umbral
// configurado), los más escasos primero.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListLowStock(ctx, uc.lowStockThreshold, uc.lowStockLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
