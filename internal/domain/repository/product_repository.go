package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// Órdenes de listado soportadas por ProductFilter.SortBy.
const (
	SortDefault   = "" // bestsellers primero, luego más recientes
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ProductFilter criterios de listado del catálogo. Los punteros nil no filtran.
type ProductFilter struct {
	CategoryID   *int64
	ProductType  string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Search       string // subcadena del nombre, sin distinguir mayúsculas
	OnlyActive   bool
	IsBestseller *bool
	IsNew        *bool
	SortBy       string
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	// DecrementStock descuenta qty solo si hay stock suficiente; si no, ErrInsufficientStock.
	DecrementStock(ctx context.Context, productID int64, qty int) error
}
