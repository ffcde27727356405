package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Estados de pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// PaymentMethodCOD pago contra entrega.
const PaymentMethodCOD = "cod"

// OrderStatuses lista ordenada de estados válidos.
var OrderStatuses = []string{
	OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
}

// IsValidOrderStatus indica si s es un estado conocido.
func IsValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Order cabecera de un pedido. TotalAmount incluye GST.
type Order struct {
	ID              int64
	UserID          int64
	Status          string
	TotalAmount     decimal.Decimal
	ShippingAddress map[string]any
	PaymentMethod   string
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	Items           []OrderItem
}

// Subtotal suma precio × cantidad de las líneas (sin GST).
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// OrderItem línea del pedido con el precio unitario congelado al momento de la compra.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
	Product   *Product
}

// LineTotal precio × cantidad.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
