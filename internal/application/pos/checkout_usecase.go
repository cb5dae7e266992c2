package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	pcart "github.com/erp-pro/erp-pro-api/internal/domain/pos"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
	"github.com/erp-pro/erp-pro-api/pkg/search"
)

// CheckoutUseCase confirma ventas de caja. El total se calcula en el
// servidor a partir de precios actuales; el descuento de stock es condicional
// y atómico, dentro de la misma transacción que la venta y sus líneas.
type CheckoutUseCase struct {
	tx       TxRunner
	sales    repository.SaleRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(tx TxRunner, sales repository.SaleRepository, products repository.ProductRepository, clients repository.ClientRepository) *CheckoutUseCase {
	return &CheckoutUseCase{tx: tx, sales: sales, products: products, clients: clients}
}

// Checkout confirma una venta: valida el carrito contra el stock actual,
// persiste venta y líneas, y descuenta stock por línea de forma condicional.
// Si alguna línea no alcanza el stock, toda la venta revierte.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sellerID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.IsValidPaymentType(in.PaymentType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// se arma el carrito con el stock y precio actuales de cada producto;
	// productId duplicado en la entrada es un error del cliente
	cart := pcart.NewCart()
	seen := make(map[string]bool, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if seen[item.ProductID] {
			return nil, domain.ErrInvalidInput
		}
		seen[item.ProductID] = true

		product, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if err := cart.AddItem(product); err != nil {
			return nil, err
		}
		if err := cart.SetQuantity(product.ID, item.Quantity); err != nil {
			return nil, err
		}
	}
	cart.SetDiscount(in.Discount)

	var clientName string
	if in.ClientID != nil && *in.ClientID != "" {
		client, err := uc.clients.GetByID(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		clientName = client.Name
	} else {
		in.ClientID = nil
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		SellerID:    sellerID,
		TotalAmount: cart.Total(),
		Discount:    cart.Discount(),
		PaymentType: in.PaymentType,
		CreatedAt:   time.Now(),
	}
	lines := cart.Items()
	items := make([]*entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}

	err := uc.tx.RunPOS(ctx, func(sales repository.SaleRepository, products repository.ProductRepository) error {
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		if err := sales.CreateItems(ctx, items); err != nil {
			return err
		}
		for _, it := range items {
			ok, err := products.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale, clientName)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return resp, nil
}

// ListSales devuelve el historial de ventas, más recientes primero, con
// filtro opcional por nombre de cliente (insensible a mayúsculas y acentos).
func (uc *CheckoutUseCase) ListSales(ctx context.Context, query string) (*dto.SaleListResponse, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if query != "" && !search.Contains(s.ClientName, query) {
			continue
		}
		items = append(items, *toSaleResponse(&s.Sale, s.ClientName))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// GetSale devuelve una venta con sus líneas.
func (uc *CheckoutUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	saleItems, err := uc.sales.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale, "")
	for _, it := range saleItems {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return resp, nil
}

// DeleteSale elimina la cabecera de la venta del historial. Las líneas se
// conservan y el stock no se repone: las unidades vendidas ya salieron del
// negocio y eliminar el registro no las devuelve al estante.
func (uc *CheckoutUseCase) DeleteSale(ctx context.Context, id string) error {
	if _, err := uc.sales.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.sales.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale, clientName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		ClientName:  clientName,
		SellerID:    s.SellerID,
		TotalAmount: s.TotalAmount,
		Discount:    s.Discount,
		PaymentType: s.PaymentType,
		CreatedAt:   s.CreatedAt,
	}
}
