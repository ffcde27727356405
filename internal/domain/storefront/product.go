package storefront

import "github.com/shopspring/decimal"

// Product vista mínima de un producto que necesita el estado de la tienda.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Slug  string          `json:"slug"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Stock int             `json:"stock"`
}
