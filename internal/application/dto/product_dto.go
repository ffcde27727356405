package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest entrada para crear una categoría. Slug se genera desde Name si viene vacío.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Image         string           `json:"image"`
	Images        []string         `json:"images"`
	CategoryID    int64            `json:"category_id"`
	ProductType   string           `json:"product_type"`
	Stock         int              `json:"stock"`
	IsNew         bool             `json:"is_new"`
	IsBestseller  bool             `json:"is_bestseller"`
	Ingredients   []string         `json:"ingredients"`
	Benefits      []string         `json:"benefits"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Image         *string          `json:"image"`
	Images        *[]string        `json:"images"`
	CategoryID    *int64           `json:"category_id"`
	ProductType   *string          `json:"product_type"`
	Stock         *int             `json:"stock"`
	IsNew         *bool            `json:"is_new"`
	IsBestseller  *bool            `json:"is_bestseller"`
	IsActive      *bool            `json:"is_active"`
	Ingredients   *[]string        `json:"ingredients"`
	Benefits      *[]string        `json:"benefits"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	OriginalPrice *decimal.Decimal  `json:"original_price"`
	Image         string            `json:"image"`
	Images        []string          `json:"images"`
	CategoryID    int64             `json:"category_id"`
	Category      *CategoryResponse `json:"category"`
	ProductType   string            `json:"product_type"`
	Rating        float64           `json:"rating"`
	ReviewsCount  int               `json:"reviews_count"`
	Stock         int               `json:"stock"`
	IsNew         bool              `json:"is_new"`
	IsBestseller  bool              `json:"is_bestseller"`
	IsActive      bool              `json:"is_active"`
	Ingredients   []string          `json:"ingredients"`
	Benefits      []string          `json:"benefits"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at"`
}

// ProductListQuery parámetros de GET /api/products.
type ProductListQuery struct {
	PageRequest
	Category    string           `query:"category"`
	ProductType string           `query:"product_type"`
	MinPrice    *decimal.Decimal `query:"-"`
	MaxPrice    *decimal.Decimal `query:"-"`
	Search      string           `query:"search"`
	SortBy      string           `query:"sort_by"`
}
