package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es el libro mayor de unidades disponibles: lo incrementan los lotes
// de recepción y lo decrementan las ventas; nunca baja de cero (los updates
// de stock son condicionales en el repositorio).
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
