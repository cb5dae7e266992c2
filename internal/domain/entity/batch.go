package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch es un evento de recepción de mercancía (entrada al almacén) para un
// producto. Inmutable una vez creado, salvo su eliminación, que revierte el
// efecto sobre Product.Stock.
type Batch struct {
	ID           string
	ProductID    string
	Quantity     int64           // unidades recibidas, siempre > 0
	Cost         decimal.Decimal // costo total del lote (0 si no se informa)
	ReceivedDate time.Time
}

// BatchWithProduct es la fila del historial de recepciones con los datos
// del producto ya unidos (JOIN en el repositorio).
type BatchWithProduct struct {
	Batch
	ProductName     string
	ProductCategory string
}
