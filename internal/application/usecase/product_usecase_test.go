package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

type fakeCatalogRepo struct {
	products map[string]*entity.Product

	lowStockThreshold int64
	lowStockLimit     int
}

func (f *fakeCatalogRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListInStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListLowStock(_ context.Context, threshold int64, limit int) ([]*entity.Product, error) {
	f.lowStockThreshold = threshold
	f.lowStockLimit = limit
	var out []*entity.Product
	for _, p := range f.products {
		if p.Stock < threshold && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) IncrementStock(_ context.Context, id string, qty int64) error {
	f.products[id].Stock += qty
	return nil
}

func (f *fakeCatalogRepo) DecrementStock(_ context.Context, id string, qty int64) (bool, error) {
	p, ok := f.products[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func setupCatalog() (*ProductUseCase, *fakeCatalogRepo) {
	repo := &fakeCatalogRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Teclado", Category: "Periféricos", Price: decimal.NewFromInt(10), Stock: 2},
		"p2": {ID: "p2", Name: "Monitor", Category: "Pantallas", Price: decimal.NewFromInt(90), Stock: 40},
	}}
	return NewProductUseCase(repo, 10, 5), repo
}

func TestListLowStock_UsaUmbralConfigurado(t *testing.T) {
	uc, repo := setupCatalog()

	out, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)

	// umbral y límite llegan desde la configuración del caso de uso
	assert.Equal(t, int64(10), repo.lowStockThreshold)
	assert.Equal(t, 5, repo.lowStockLimit)

	// solo p1 (stock 2) está bajo el umbral
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, int64(2), out.Items[0].Stock)
}

func TestListProducts_FiltroPorNombreOCategoria(t *testing.T) {
	uc, _ := setupCatalog()
	ctx := context.Background()

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	byName, err := uc.List(ctx, "teclado")
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, "p1", byName.Items[0].ID)

	// el filtro ignora acentos: "perifericos" encuentra "Periféricos"
	byCategory, err := uc.List(ctx, "perifericos")
	require.NoError(t, err)
	require.Equal(t, 1, byCategory.Total)
	assert.Equal(t, "p1", byCategory.Items[0].ID)
}

func TestUpdateProduct_NoTocaStock(t *testing.T) {
	uc, repo := setupCatalog()
	name := "Teclado mecánico"
	price := decimal.NewFromInt(15)

	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Teclado mecánico", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, int64(2), repo.products["p1"].Stock)
}
