package dto

import (
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
)

// FromUser convierte la entidad a la respuesta pública (sin hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     optional(u.Phone),
		Address:   optional(u.Address),
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// FromCategory convierte una categoría.
func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: optional(c.Description),
		Icon:        optional(c.Icon),
		Image:       optional(c.Image),
	}
}

// FromProduct convierte un producto; las listas nulas salen como [].
func FromProduct(p *entity.Product) ProductResponse {
	out := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		Image:        p.Image,
		Images:       nonNil(p.Images),
		CategoryID:   p.CategoryID,
		ProductType:  p.ProductType,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Stock:        p.Stock,
		IsNew:        p.IsNew,
		IsBestseller: p.IsBestseller,
		IsActive:     p.IsActive,
		Ingredients:  nonNil(p.Ingredients),
		Benefits:     nonNil(p.Benefits),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.OriginalPrice.Valid {
		op := p.OriginalPrice.Decimal
		out.OriginalPrice = &op
	}
	if p.Category != nil {
		c := FromCategory(p.Category)
		out.Category = &c
	}
	return out
}

// FromCartItem convierte una línea del carrito persistido.
func FromCartItem(it *entity.CartItem) CartItemResponse {
	out := CartItemResponse{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity}
	if it.Product != nil {
		out.Product = FromProduct(it.Product)
	}
	return out
}

// FromWishlistItem convierte un producto guardado.
func FromWishlistItem(it *entity.WishlistItem) WishlistItemResponse {
	out := WishlistItemResponse{ID: it.ID, ProductID: it.ProductID}
	if it.Product != nil {
		out.Product = FromProduct(it.Product)
	}
	return out
}

// FromOrder convierte un pedido con sus líneas.
func FromOrder(o *entity.Order) OrderResponse {
	out := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]OrderItemResponse, 0, len(o.Items)),
	}
	if out.ShippingAddress == nil {
		out.ShippingAddress = map[string]any{}
	}
	for _, it := range o.Items {
		item := OrderItemResponse{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
		if it.Product != nil {
			p := FromProduct(it.Product)
			item.Product = &p
		}
		out.Items = append(out.Items, item)
	}
	return out
}

// FromNotification convierte una notificación del feed.
func FromNotification(n storefront.Notification) NotificationResponse {
	return NotificationResponse{ID: n.ID, Type: n.Type, Message: n.Message, Time: n.Time}
}

// StorefrontProduct proyección del producto que usa el contenedor de estado.
func StorefrontProduct(p *entity.Product) storefront.Product {
	return storefront.Product{ID: p.ID, Name: p.Name, Slug: p.Slug, Price: p.Price, Image: p.Image, Stock: p.Stock}
}

// ToStorefrontProduct proyección desde la respuesta de la API (lado cliente).
func (p ProductResponse) ToStorefrontProduct() storefront.Product {
	return storefront.Product{ID: p.ID, Name: p.Name, Slug: p.Slug, Price: p.Price, Image: p.Image, Stock: p.Stock}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
