package repository

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// CartRepository persistencia del carrito por usuario. Las lecturas cargan el Product.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	GetByID(ctx context.Context, userID, itemID int64) (*entity.CartItem, error)
	// Add inserta la línea o suma item.Quantity a la existente del mismo producto, en una sola
	// operación y sin superar maxQuantity. Deja en item el ID y la cantidad resultante.
	Add(ctx context.Context, item *entity.CartItem, maxQuantity int) error
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) error
	Delete(ctx context.Context, itemID int64) error
	ClearByUser(ctx context.Context, userID int64) error
}
