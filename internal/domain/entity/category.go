package entity

// Category representa una categoría del catálogo (Skincare, Haircare, ...).
type Category struct {
	ID          int64
	Name        string
	Slug        string // único
	Description string
	Icon        string
	Image       string
}
