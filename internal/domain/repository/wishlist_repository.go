package repository

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// WishlistRepository persistencia de la lista de deseos por usuario.
type WishlistRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistItem, error)
	GetByProduct(ctx context.Context, userID, productID int64) (*entity.WishlistItem, error)
	Create(ctx context.Context, item *entity.WishlistItem) error
	// DeleteByProduct devuelve false si el producto no estaba en la lista.
	DeleteByProduct(ctx context.Context, userID, productID int64) (bool, error)
}
