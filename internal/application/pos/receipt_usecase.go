package pos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// ReceiptUseCase arma los datos del recibo de una venta y delega el PDF
// al generador.
type ReceiptUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	profiles repository.ProfileRepository
	pdf      ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	profiles repository.ProfileRepository,
	pdf ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, products: products, clients: clients, profiles: profiles, pdf: pdf}
}

// Generate produce el recibo en PDF de una venta confirmada.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	items, err := uc.sales.GetItems(ctx, saleID)
	if err != nil {
		return nil, err
	}

	data := ReceiptData{
		SaleID:      sale.ID,
		PaymentType: sale.PaymentType,
		Discount:    sale.Discount,
		Total:       sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
	}

	if sale.ClientID != nil {
		// el cliente pudo haberse eliminado después de la venta
		if client, err := uc.clients.GetByID(ctx, *sale.ClientID); err == nil {
			data.ClientName = client.Name
		}
	}
	if seller, err := uc.profiles.GetByID(ctx, sale.SellerID); err == nil {
		data.SellerName = seller.FullName
	}

	subtotal := decimal.Zero
	for _, it := range items {
		name := it.ProductID
		if product, err := uc.products.GetByID(ctx, it.ProductID); err == nil {
			name = product.Name
		}
		lineTotal := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		subtotal = subtotal.Add(lineTotal)
		data.Lines = append(data.Lines, ReceiptLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			Subtotal:    lineTotal,
		})
	}
	data.Subtotal = subtotal

	return uc.pdf.Generate(data)
}
