package dto

import "github.com/shopspring/decimal"

// CartItemRequest entrada para agregar al carrito.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"` // nil = 1
}

// CartQuantityRequest cuerpo alternativo de PUT /api/cart/:id.
type CartQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   ProductResponse `json:"product"`
}

// CartSummaryResponse carrito con totales derivados.
type CartSummaryResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

// WishlistItemRequest entrada para guardar un producto.
type WishlistItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// WishlistItemResponse producto guardado.
type WishlistItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Product   ProductResponse `json:"product"`
}
