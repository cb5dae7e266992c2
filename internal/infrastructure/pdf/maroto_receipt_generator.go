// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° de venta + Fecha/Hora    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE / VENDEDOR / MÉTODO DE PAGO                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apppos "github.com/erp-pro/erp-pro-api/internal/application/pos"
	"github.com/erp-pro/erp-pro-api/pkg/format"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ apppos.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa pos.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del negocio
// que encabeza el recibo.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{businessName: businessName}
}

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(data apppos.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su compra. Conserve este recibo para cambios o devoluciones.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2, Align: align.Center}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y n° de venta + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(data apppos.ReceiptData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA N° "+shortID(data.SaleID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+format.Date(data.CreatedAt)+" "+format.Time(data.CreatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// detailsRow: cliente, vendedor y método de pago.
func detailsRow(data apppos.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cliente: %s   |   Vendedor: %s   |   Pago: %s",
				nonEmpty(data.ClientName, "Mostrador"),
				nonEmpty(data.SellerName, "—"),
				paymentLabel(data.PaymentType),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del recibo.
func tableLineRows(lines []apppos.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(l.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(l.Subtotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data apppos.ReceiptData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(formatMoney(data.Subtotal.StringFixed(0))),
			value(formatMoney(data.Discount.StringFixed(0))),
			grandValue(formatMoney(data.Total.StringFixed(0))),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// paymentLabel traduce el código del método de pago a su etiqueta.
func paymentLabel(pt string) string {
	switch pt {
	case "cash":
		return "Efectivo"
	case "card":
		return "Tarjeta"
	case "transfer":
		return "Transferencia"
	}
	return pt
}

// shortID devuelve los primeros 8 caracteres del UUID, suficientes para
// identificar la venta en el recibo.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	pre := n % 3
	if pre > 0 {
		buf = append(buf, s[:pre]...)
		if n > pre {
			buf = append(buf, '.')
		}
	}
	for i := pre; i < n; i += 3 {
		buf = append(buf, s[i:i+3]...)
		if i+3 < n {
			buf = append(buf, '.')
		}
	}
	return string(buf)
}
