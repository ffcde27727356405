package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del pedido.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest entrada de checkout.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress map[string]any     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

// OrderItemResponse línea del pedido con el producto.
type OrderItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Product   *ProductResponse `json:"product"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user_id"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingAddress map[string]any      `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderListQuery filtros del listado de administración.
type OrderListQuery struct {
	PageRequest
	Status string `query:"status"`
}
