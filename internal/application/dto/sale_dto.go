package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest una línea del carrito a confirmar.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest entrada para confirmar una venta desde caja.
type CheckoutRequest struct {
	ClientID    *string               `json:"client_id"`
	PaymentType string                `json:"payment_type" validate:"required"`
	Discount    decimal.Decimal       `json:"discount"`
	Items       []CheckoutItemRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse una línea de venta confirmada.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string             `json:"id"`
	ClientID    *string            `json:"client_id,omitempty"`
	ClientName  string             `json:"client_name,omitempty"`
	SellerID    string             `json:"seller_id"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Discount    decimal.Decimal    `json:"discount"`
	PaymentType string             `json:"payment_type"`
	Items       []SaleItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SaleListResponse lista de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
