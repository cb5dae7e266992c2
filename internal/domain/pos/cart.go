// Package pos contiene el modelo puro del carrito de caja. No hace I/O:
// acumula líneas en memoria durante una sesión de venta y se materializa en
// una Sale al confirmar el checkout.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// Line es una línea pendiente de venta. MaxStock es el techo de unidades
// capturado al añadir el producto (el stock visible en ese momento); el
// decremento real en checkout se valida contra el stock actual en la DB.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
	MaxStock  int64
}

// Subtotal devuelve precio unitario por cantidad de la línea.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart es el carrito de una sesión de caja: colección ordenada de líneas con
// productId único, más el descuento. Pertenece en exclusiva a la sesión
// activa; no se comparte entre sesiones.
type Cart struct {
	lines    []*Line
	index    map[string]*Line
	discount decimal.Decimal
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{index: make(map[string]*Line)}
}

// AddItem añade una unidad del producto. Si ya está en el carrito incrementa
// su cantidad en 1, salvo que eso supere el techo de stock capturado
// (ErrInsufficientStock y el carrito queda intacto). Si es nuevo, crea la
// línea con cantidad 1 capturando precio y techo de stock actuales.
func (c *Cart) AddItem(p *entity.Product) error {
	if line, ok := c.index[p.ID]; ok {
		if line.Quantity >= line.MaxStock {
			return domain.ErrInsufficientStock
		}
		line.Quantity++
		return nil
	}
	if p.Stock <= 0 {
		return domain.ErrInsufficientStock
	}
	line := &Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		MaxStock:  p.Stock,
	}
	c.lines = append(c.lines, line)
	c.index[p.ID] = line
	return nil
}

// SetQuantity fija la cantidad de una línea. n <= 0 elimina la línea;
// n mayor que el techo de stock se rechaza dejando el carrito intacto.
func (c *Cart) SetQuantity(productID string, n int64) error {
	line, ok := c.index[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if n <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	if n > line.MaxStock {
		return domain.ErrInsufficientStock
	}
	line.Quantity = n
	return nil
}

// RemoveItem elimina la línea del producto si existe.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.index[productID]; !ok {
		return
	}
	delete(c.index, productID)
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// SetDiscount fija el descuento, acotado al rango [0, Subtotal()].
func (c *Cart) SetDiscount(d decimal.Decimal) {
	if d.LessThan(decimal.Zero) {
		d = decimal.Zero
	}
	if sub := c.Subtotal(); d.GreaterThan(sub) {
		d = sub
	}
	c.discount = d
}

// Discount devuelve el descuento vigente.
func (c *Cart) Discount() decimal.Decimal {
	return c.discount
}

// Subtotal es la suma de precio por cantidad de todas las líneas.
// Siempre se recalcula desde el estado actual; no hay acumulador oculto.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

// Total es max(0, Subtotal - Discount).
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.discount)
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Items() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Len devuelve cuántas líneas distintas hay en el carrito.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear vacía el carrito y el descuento (tras un checkout exitoso).
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]*Line)
	c.discount = decimal.Zero
}
