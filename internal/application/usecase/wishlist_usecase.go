package usecase

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// WishlistUseCase lista de deseos persistida. Un producto aparece una sola vez por usuario.
type WishlistUseCase struct {
	repo        repository.WishlistRepository
	productRepo repository.ProductRepository
}

// NewWishlistUseCase construye el caso de uso.
func NewWishlistUseCase(repo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{repo: repo, productRepo: productRepo}
}

// List productos guardados del usuario.
func (uc *WishlistUseCase) List(ctx context.Context, userID int64) ([]dto.WishlistItemResponse, error) {
	items, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WishlistItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromWishlistItem(it))
	}
	return out, nil
}

// Add guarda un producto; ErrAlreadyInWishlist si ya estaba.
func (uc *WishlistUseCase) Add(ctx context.Context, userID int64, in dto.WishlistItemRequest) (*dto.WishlistItemResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	existing, err := uc.repo.GetByProduct(ctx, userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyInWishlist
	}
	item := &entity.WishlistItem{UserID: userID, ProductID: in.ProductID}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product
	out := dto.FromWishlistItem(item)
	return &out, nil
}

// Remove quita un producto de la lista.
func (uc *WishlistUseCase) Remove(ctx context.Context, userID, productID int64) error {
	removed, err := uc.repo.DeleteByProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.WithDetail(domain.ErrNotFound, "Item not in wishlist")
	}
	return nil
}
