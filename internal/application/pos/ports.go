// Package pos implementa el checkout de caja: confirmación atómica de una
// venta con descuento de stock, historial de ventas y recibo en PDF.
package pos

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios ligados a
// ella. Si fn devuelve error se hace rollback completo.
type TxRunner interface {
	RunPOS(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository) error) error
}

// ReceiptLine una línea del recibo.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptData datos para generar el recibo de una venta.
type ReceiptData struct {
	SaleID      string
	ClientName  string
	SellerName  string
	PaymentType string
	Lines       []ReceiptLine
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}

// ReceiptGenerator genera el recibo de venta en PDF.
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}
