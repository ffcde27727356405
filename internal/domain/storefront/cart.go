package storefront

import "github.com/shopspring/decimal"

// Line línea del carrito.
type Line struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal precio × cantidad.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderLine par producto/cantidad que se envía al confirmar el pedido.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart carrito en memoria, en orden de inserción. El valor cero está listo para usarse.
type Cart struct {
	lines []Line
}

// NewCart construye un carrito a partir de líneas existentes (p. ej. leídas de la DB).
// Las líneas con cantidad <= 0 se descartan y los productos repetidos se fusionan.
func NewCart(lines ...Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		c.AddQuantity(l.Product, l.Quantity)
	}
	return c
}

// Add agrega una unidad: si el producto ya está, incrementa su cantidad en lugar de duplicar la línea.
func (c *Cart) Add(p Product) {
	c.AddQuantity(p, 1)
}

// AddQuantity agrega n unidades del producto. n <= 0 no hace nada.
func (c *Cart) AddQuantity(p Product, n int) {
	if n <= 0 {
		return
	}
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity += n
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: n})
}

// Remove elimina la línea del producto (si existe).
func (c *Cart) Remove(productID int64) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// UpdateQuantity fija la cantidad; q <= 0 elimina la línea. Un producto ausente no se agrega.
func (c *Cart) UpdateQuantity(productID int64, q int) {
	if q <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = q
	}
}

// Quantity cantidad del producto en el carrito (0 si no está).
func (c *Cart) Quantity(productID int64) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Items copia de las líneas.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total Σ precio × cantidad.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count Σ cantidades (lo que muestra el icono del carrito).
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Len número de líneas distintas.
func (c *Cart) Len() int { return len(c.lines) }

// Clear vacía el carrito.
func (c *Cart) Clear() { c.lines = nil }

// OrderLines líneas en el formato del pedido.
func (c *Cart) OrderLines() []OrderLine {
	out := make([]OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, OrderLine{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return out
}

func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
