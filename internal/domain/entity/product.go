package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto que maneja el catálogo.
const (
	ProductTypeSerum  = "serum"
	ProductTypeCream  = "cream"
	ProductTypeOil    = "oil"
	ProductTypeTablet = "tablet"
	ProductTypeScrub  = "scrub"
)

// Product representa un producto del catálogo.
// OriginalPrice es el precio tachado (nulo si no hay descuento).
type Product struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	Image         string
	Images        []string
	CategoryID    int64
	Category      *Category // cargada con LEFT JOIN, puede ser nil
	ProductType   string
	Rating        float64
	ReviewsCount  int
	Stock         int
	IsNew         bool
	IsBestseller  bool
	IsActive      bool
	Ingredients   []string
	Benefits      []string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// InStock indica si hay unidades suficientes para la cantidad pedida.
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}
