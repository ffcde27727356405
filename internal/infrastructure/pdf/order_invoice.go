// Package pdf genera el comprobante PDF de un pedido de la tienda con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: PureGlow        │  Pedido #N + Fecha + Estado       │
//	│  CLIENTE: nombre, email, teléfono                            │
//	│  ENVÍO: dirección de entrega                                 │
//	│  TABLA: Producto | Cant | Precio | Importe                   │
//	│  TOTALES: Subtotal / GST 18% / Total                         │
//	│  FOOTER: QR con la referencia del pedido + método de pago    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
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

	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/pkg/money"
)

var _ ports.InvoicePDFGenerator = (*OrderInvoiceGenerator)(nil)

var (
	colorBrand = &props.Color{Red: 46, Green: 125, Blue: 90}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Orden preferido de los campos de la dirección; el resto va después en orden alfabético.
var addressOrder = []string{"full_name", "name", "address", "street", "line1", "line2", "city", "state", "pincode", "zip", "country", "phone"}

// OrderInvoiceGenerator implementa ports.InvoicePDFGenerator.
type OrderInvoiceGenerator struct {
	storeName string
}

// NewOrderInvoiceGenerator construye el generador con el nombre comercial de la tienda.
func NewOrderInvoiceGenerator(storeName string) *OrderInvoiceGenerator {
	if storeName == "" {
		storeName = "PureGlow"
	}
	return &OrderInvoiceGenerator{storeName: storeName}
}

// GenerateOrderInvoice arma el comprobante y devuelve los bytes del PDF.
func (g *OrderInvoiceGenerator) GenerateOrderInvoice(order *entity.Order, customer *entity.User) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s - Order #%d", g.storeName, order.ID), true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.5}))
	if customer != nil {
		m.AddRows(customerRow(customer))
	}
	m.AddRows(shippingRows(order.ShippingAddress)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(order.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))
	m.AddRows(totalsRow(order))
	m.AddRows(row.New(6))
	m.AddRows(g.footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *OrderInvoiceGenerator) headerRow(o *entity.Order) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorBrand, Top: 1}),
			text.New("Daily care, naturally.", props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ORDER INVOICE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorBrand, Top: 1}),
			text.New(fmt.Sprintf("#%d", o.ID), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Date: "+o.CreatedAt.Format("02 Jan 2006"), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
			text.New("Status: "+o.Status, props.Text{Size: 8, Align: align.Right, Top: 17, Color: colorGray}),
		),
	)
}

func customerRow(u *entity.User) core.Row {
	contact := u.Email
	if u.Phone != "" {
		contact += "   |   " + u.Phone
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorBrand, Top: 1}),
		text.New(nonEmpty(u.FullName, u.Email), props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		text.New(contact, props.Text{Size: 8, Top: 10, Color: colorGray}),
	))
}

func shippingRows(addr map[string]any) []core.Row {
	rows := []core.Row{row.New(6).Add(col.New(12).Add(
		text.New("SHIP TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorBrand, Top: 1}),
	))}
	for _, l := range addressLines(addr) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray, Left: 1}),
		)))
	}
	return rows
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorBrand, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Price", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := fmt.Sprintf("Product %d", it.ProductID)
		if it.Product != nil {
			name = it.Product.Name
		}
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(amount(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(amount(it.LineTotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(o *entity.Order) core.Row {
	sub := o.Subtotal()
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("GST (18%):", 5),
			text.New("Total:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorBrand, Right: 2, Top: 11}),
		),
		col.New(3).Add(
			value(amount(sub), 0),
			value(amount(money.GSTPart(sub, o.TotalAmount)), 5),
			text.New(amount(o.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorBrand, Right: 1, Top: 11}),
		),
	)
}

func (g *OrderInvoiceGenerator) footerRow(o *entity.Order) core.Row {
	payment := strings.ToUpper(o.PaymentMethod)
	if o.PaymentMethod == entity.PaymentMethodCOD {
		payment = "Cash on delivery"
	}
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(OrderReference(o.ID), props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Payment: "+payment+" ("+o.PaymentStatus+")", props.Text{Size: 8, Top: 4, Left: 3}),
			text.New("Reference: "+OrderReference(o.ID), props.Text{Size: 8, Top: 10, Left: 3, Color: colorGray}),
			text.New("Thank you for shopping with "+g.storeName+".", props.Text{Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorBrand}),
		),
	)
}

// OrderReference referencia legible del pedido impresa en el QR.
func OrderReference(orderID int64) string {
	return fmt.Sprintf("PUREGLOW-ORDER-%06d", orderID)
}

// addressLines convierte la dirección libre del pedido en líneas "campo: valor".
func addressLines(addr map[string]any) []string {
	seen := make(map[string]bool, len(addr))
	var lines []string
	push := func(k string) {
		v, ok := addr[k]
		if !ok || seen[k] {
			return
		}
		seen[k] = true
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" && v != nil {
			lines = append(lines, s)
		}
	}
	for _, k := range addressOrder {
		push(k)
	}
	rest := make([]string, 0, len(addr))
	for k := range addr {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		push(k)
	}
	return lines
}

// amount usa "Rs." porque la fuente helvetica del PDF no incluye el glifo de la rupia.
func amount(d decimal.Decimal) string {
	return strings.Replace(money.FormatINR(d), "₹", "Rs. ", 1)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
