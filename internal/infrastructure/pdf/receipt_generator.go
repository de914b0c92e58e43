// Package pdf renderiza el comprobante de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: COMPROBANTE DE VENTA    │  N° venta + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email / Tel                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Precio lista | Total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: Método / Estado / Comisión / TOTAL                    │
//	│  FOOTER: QR con la referencia de la venta                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type ReceiptGenerator struct {
	issuer string
}

var _ billing.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

// NewReceiptGenerator construye el generador; issuer aparece como autor y en el pie.
func NewReceiptGenerator(issuer string) *ReceiptGenerator {
	return &ReceiptGenerator{issuer: issuer}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(receipt *billing.Receipt) ([]byte, error) {
	if receipt == nil || receipt.Sale == nil {
		return nil, fmt.Errorf("pdf: comprobante sin venta")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprobante de venta %d", receipt.Sale.ID), true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(receipt.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(productRow(receipt.Product, receipt.Sale))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(paymentRow(receipt.Sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.issuer, receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número de venta + fecha (der).
func headerRow(receipt *billing.Receipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+receipt.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Venta N° %d", receipt.Sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+receipt.Sale.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del comprador; si el cliente fue eliminado se indica.
func clientRow(client *entity.Client) core.Row {
	name, contact := "Cliente no disponible", "—"
	if client != nil {
		name = client.Name
		contact = fmt.Sprintf("Email: %s   |   Tel: %s", nonEmpty(client.Email, "—"), nonEmpty(deref(client.Phone), "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del producto vendido.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio lista", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

func productRow(product *entity.Product, sale *entity.Sale) core.Row {
	name, category, price := fmt.Sprintf("Producto #%d", sale.ProductID), "—", "—"
	if product != nil {
		name = product.Name
		category = product.Category
		price = "$" + formatMoney(product.Price)
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(3).Add(text.New(category, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(price, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New("$"+formatMoney(sale.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// paymentRow: método, estado, comisión y total, una línea cada 5mm.
func paymentRow(sale *entity.Sale) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Método de pago:", 0),
			label("Estado:", 5),
			label("Comisión:", 10),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 15,
			}),
		),
		col.New(3).Add(
			value(sale.PaymentMethod, 0),
			value(sale.PaymentStatus, 5),
			value("$"+formatMoney(sale.Commission), 10),
			text.New("$"+formatMoney(sale.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 15,
			}),
		),
	)
}

// footerRow: QR con la referencia de la venta y leyenda.
func footerRow(issuer string, receipt *billing.Receipt) core.Row {
	ref := fmt.Sprintf("%s|venta=%d|total=%s", issuer, receipt.Sale.ID, receipt.Sale.Total.StringFixed(2))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia: "+ref, props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray}),
			text.New("Este comprobante no reemplaza la factura de venta.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + string(buf) + "," + frac
}
