package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago aceptados en caja.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// IsValidPaymentType indica si el tag de pago es uno de los aceptados.
func IsValidPaymentType(t string) bool {
	switch t {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Sale es una transacción de caja (POS). ClientID es opcional: nil representa
// al comprador genérico. Posee una colección de SaleItem creada en la misma
// transacción de base de datos.
type Sale struct {
	ID          string
	ClientID    *string
	SellerID    string
	TotalAmount decimal.Decimal // max(0, subtotal - descuento)
	Discount    decimal.Decimal
	PaymentType string // cash | card | transfer
	CreatedAt   time.Time
}

// SaleItem es una línea de venta: referencia al producto, cantidad y el
// precio unitario capturado en el momento de la venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
}

// SaleWithClient es la fila del historial de ventas con el nombre del
// cliente ya unido (vacío para el comprador genérico).
type SaleWithClient struct {
	Sale
	ClientName string
}
