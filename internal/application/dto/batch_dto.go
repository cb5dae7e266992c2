package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveBatchRequest entrada para registrar una recepción de mercadería.
type ReceiveBatchRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
	Cost      decimal.Decimal `json:"cost"`
}

// BatchResponse salida de un lote con los datos del producto unidos.
type BatchResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	Quantity        int64           `json:"quantity"`
	Cost            decimal.Decimal `json:"cost"`
	ReceivedDate    time.Time       `json:"received_date"`
}

// BatchListResponse lista de lotes recibidos.
type BatchListResponse struct {
	Items []BatchResponse `json:"items"`
	Total int             `json:"total"`
}
