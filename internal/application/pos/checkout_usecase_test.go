package pos

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (f *stubProductRepo) Create(_ context.Context, p *entity.Product) error { return nil }

func (f *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *stubProductRepo) Update(_ context.Context, p *entity.Product) error { return nil }
func (f *stubProductRepo) Delete(_ context.Context, id string) error         { return nil }
func (f *stubProductRepo) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }
func (f *stubProductRepo) ListInStock(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}
func (f *stubProductRepo) ListLowStock(_ context.Context, _ int64, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *stubProductRepo) IncrementStock(_ context.Context, id string, qty int64) error {
	f.products[id].Stock += qty
	return nil
}

func (f *stubProductRepo) DecrementStock(_ context.Context, id string, qty int64) (bool, error) {
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

type stubSaleRepo struct {
	sales       map[string]*entity.Sale
	items       map[string][]*entity.SaleItem
	clientNames map[string]string
}

func (f *stubSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	f.sales[s.ID] = s
	return nil
}

func (f *stubSaleRepo) CreateItems(_ context.Context, items []*entity.SaleItem) error {
	for _, it := range items {
		f.items[it.SaleID] = append(f.items[it.SaleID], it)
	}
	return nil
}

func (f *stubSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *stubSaleRepo) GetItems(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	return f.items[saleID], nil
}

func (f *stubSaleRepo) List(_ context.Context) ([]*entity.SaleWithClient, error) {
	out := make([]*entity.SaleWithClient, 0, len(f.sales))
	for _, s := range f.sales {
		name := "Umumiy xaridor"
		if s.ClientID != nil {
			if n, ok := f.clientNames[*s.ClientID]; ok {
				name = n
			}
		}
		out = append(out, &entity.SaleWithClient{Sale: *s, ClientName: name})
	}
	return out, nil
}

// Delete borra solo la cabecera; las líneas se conservan como historial.
func (f *stubSaleRepo) Delete(_ context.Context, id string) error {
	delete(f.sales, id)
	return nil
}

type stubClientRepo struct {
	clients map[string]*entity.Client
}

func (f *stubClientRepo) Create(_ context.Context, c *entity.Client) error { return nil }
func (f *stubClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (f *stubClientRepo) Update(_ context.Context, c *entity.Client) error { return nil }
func (f *stubClientRepo) Delete(_ context.Context, id string) error        { return nil }
func (f *stubClientRepo) List(_ context.Context) ([]*entity.Client, error) { return nil, nil }

// stubTxRunner copia el estado antes de fn y lo restaura si falla.
type stubTxRunner struct {
	sales    *stubSaleRepo
	products *stubProductRepo
}

func (f *stubTxRunner) RunPOS(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	prevSales := make(map[string]*entity.Sale, len(f.sales.sales))
	for k, v := range f.sales.sales {
		cp := *v
		prevSales[k] = &cp
	}
	prevItems := make(map[string][]*entity.SaleItem, len(f.sales.items))
	for k, v := range f.sales.items {
		prevItems[k] = append([]*entity.SaleItem(nil), v...)
	}
	prevProducts := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		prevProducts[k] = &cp
	}
	if err := fn(f.sales, f.products); err != nil {
		f.sales.sales = prevSales
		f.sales.items = prevItems
		f.products.products = prevProducts
		return err
	}
	return nil
}

func setupCheckout() (*CheckoutUseCase, *stubProductRepo, *stubSaleRepo) {
	products := &stubProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Teclado", Price: decimal.NewFromInt(10), Stock: 8},
		"p2": {ID: "p2", Name: "Mouse", Price: decimal.NewFromInt(5), Stock: 3},
	}}
	sales := &stubSaleRepo{
		sales:       map[string]*entity.Sale{},
		items:       map[string][]*entity.SaleItem{},
		clientNames: map[string]string{"c1": "Akmal"},
	}
	clients := &stubClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Akmal"},
	}}
	tx := &stubTxRunner{sales: sales, products: products}
	return NewCheckoutUseCase(tx, sales, products, clients), products, sales
}

func TestCheckout_VentaCompleta(t *testing.T) {
	uc, products, sales := setupCheckout()
	clientID := "c1"

	// 2x10 + 1x5 = 25; descuento 3 => total 22
	resp, err := uc.Checkout(context.Background(), "seller-1", dto.CheckoutRequest{
		ClientID:    &clientID,
		PaymentType: entity.PaymentCash,
		Discount:    decimal.NewFromInt(3),
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(22)))
	assert.True(t, resp.Discount.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Akmal", resp.ClientName)
	assert.Len(t, resp.Items, 2)

	// stock descontado por línea
	assert.Equal(t, int64(6), products.products["p1"].Stock)
	assert.Equal(t, int64(2), products.products["p2"].Stock)
	assert.Len(t, sales.sales, 1)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc, _, _ := setupCheckout()
	_, err := uc.Checkout(context.Background(), "seller-1", dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_ValidaEntrada(t *testing.T) {
	uc, _, _ := setupCheckout()
	ctx := context.Background()
	items := []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}}

	_, err := uc.Checkout(ctx, "s", dto.CheckoutRequest{PaymentType: "cripto", Items: items})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Checkout(ctx, "s", dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Discount:    decimal.NewFromInt(-1),
		Items:       items,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// producto repetido en la entrada
	_, err = uc.Checkout(ctx, "s", dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p1", Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// cliente inexistente
	bad := "nope"
	_, err = uc.Checkout(ctx, "s", dto.CheckoutRequest{
		ClientID:    &bad,
		PaymentType: entity.PaymentCash,
		Items:       items,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckout_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, products, sales := setupCheckout()

	// p2 solo tiene 3 unidades
	_, err := uc.Checkout(context.Background(), "seller-1", dto.CheckoutRequest{
		PaymentType: entity.PaymentCard,
		Items: []dto.CheckoutItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 4},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// ni venta ni descuento parcial de stock
	assert.Empty(t, sales.sales)
	assert.Equal(t, int64(8), products.products["p1"].Stock)
	assert.Equal(t, int64(3), products.products["p2"].Stock)
}

func TestCheckout_DescuentoMayorAlSubtotal(t *testing.T) {
	uc, _, _ := setupCheckout()

	// subtotal 10, descuento 50: el total queda en 0, nunca negativo
	resp, err := uc.Checkout(context.Background(), "seller-1", dto.CheckoutRequest{
		PaymentType: entity.PaymentTransfer,
		Discount:    decimal.NewFromInt(50),
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.Zero))
}

func TestDeleteSale_NoReponeStock(t *testing.T) {
	uc, products, sales := setupCheckout()
	ctx := context.Background()

	resp, err := uc.Checkout(ctx, "seller-1", dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), products.products["p1"].Stock)

	require.NoError(t, uc.DeleteSale(ctx, resp.ID))

	// la cabecera desaparece del historial pero el stock queda como estaba
	// y las líneas sobreviven como registro de lo vendido
	assert.Empty(t, sales.sales)
	assert.Equal(t, int64(5), products.products["p1"].Stock)
	require.Len(t, sales.items[resp.ID], 1)
	assert.Equal(t, int64(3), sales.items[resp.ID][0].Quantity)
}

func TestListSales_FiltroPorCliente(t *testing.T) {
	uc, _, _ := setupCheckout()
	ctx := context.Background()
	clientID := "c1"

	_, err := uc.Checkout(ctx, "seller-1", dto.CheckoutRequest{
		ClientID:    &clientID,
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = uc.Checkout(ctx, "seller-1", dto.CheckoutRequest{
		PaymentType: entity.PaymentCash,
		Items:       []dto.CheckoutItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	require.NoError(t, err)

	all, err := uc.ListSales(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	// filtro insensible a mayúsculas sobre el nombre del cliente
	filtered, err := uc.ListSales(ctx, "akmal")
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "Akmal", filtered.Items[0].ClientName)

	// la venta de mostrador sale con el nombre genérico
	generic, err := uc.ListSales(ctx, "umumiy")
	require.NoError(t, err)
	require.Equal(t, 1, generic.Total)
	assert.Equal(t, "Umumiy xaridor", generic.Items[0].ClientName)
}

func TestDeleteSale_Inexistente(t *testing.T) {
	uc, _, _ := setupCheckout()
	err := uc.DeleteSale(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
