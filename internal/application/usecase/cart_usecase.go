package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
)

// CartUseCase carrito persistido por usuario. Los totales se calculan con storefront.Cart,
// el mismo contenedor que usa el cliente.
type CartUseCase struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	feed        *storefront.NotificationFeed
}

// NewCartUseCase construye el caso de uso. feed puede ser nil.
func NewCartUseCase(repo repository.CartRepository, productRepo repository.ProductRepository, feed *storefront.NotificationFeed) *CartUseCase {
	return &CartUseCase{repo: repo, productRepo: productRepo, feed: feed}
}

// List líneas del carrito del usuario con su producto.
func (uc *CartUseCase) List(ctx context.Context, userID int64) ([]dto.CartItemResponse, error) {
	items, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromCartItem(it))
	}
	return out, nil
}

// Summary líneas más total (Σ precio × cantidad) y cantidad de unidades.
func (uc *CartUseCase) Summary(ctx context.Context, userID int64) (*dto.CartSummaryResponse, error) {
	items, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart := &storefront.Cart{}
	out := &dto.CartSummaryResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.FromCartItem(it))
		if it.Product != nil {
			cart.AddQuantity(dto.StorefrontProduct(it.Product), it.Quantity)
		}
	}
	out.Total = cart.Total()
	out.Count = cart.Count()
	return out, nil
}

// maxCartQuantity tope de unidades por línea.
const maxCartQuantity = 999

// Add agrega quantity unidades (1 por defecto). Si el producto ya está en el carrito
// incrementa la línea existente hasta maxCartQuantity.
func (uc *CartUseCase) Add(ctx context.Context, userID int64, in dto.CartItemRequest) (*dto.CartItemResponse, error) {
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if err := validateCartQuantity(qty); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	item := &entity.CartItem{UserID: userID, ProductID: in.ProductID, Quantity: qty}
	if err := uc.repo.Add(ctx, item, maxCartQuantity); err != nil {
		return nil, err
	}
	if uc.feed != nil {
		uc.feed.Push(storefront.NotificationCart, fmt.Sprintf("%s was added to cart", product.Name))
	}
	return uc.get(ctx, userID, item.ID)
}

// UpdateQuantity fija la cantidad de una línea. quantity <= 0 elimina la línea y devuelve (nil, nil).
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) (*dto.CartItemResponse, error) {
	if quantity > maxCartQuantity {
		return nil, validateCartQuantity(quantity)
	}
	item, err := uc.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.WithDetail(domain.ErrNotFound, "Cart item not found")
	}
	if quantity <= 0 {
		return nil, uc.repo.Delete(ctx, itemID)
	}
	if err := uc.repo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	return uc.get(ctx, userID, itemID)
}

func validateCartQuantity(qty int) error {
	if qty <= 0 {
		return domain.WithDetail(domain.ErrInvalidInput, "Quantity must be greater than zero")
	}
	if qty > maxCartQuantity {
		return domain.WithDetail(domain.ErrInvalidInput, "Quantity must be at most %d", maxCartQuantity)
	}
	return nil
}

// Remove elimina una línea del usuario.
func (uc *CartUseCase) Remove(ctx context.Context, userID, itemID int64) error {
	item, err := uc.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.WithDetail(domain.ErrNotFound, "Cart item not found")
	}
	return uc.repo.Delete(ctx, itemID)
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return uc.repo.ClearByUser(ctx, userID)
}

func (uc *CartUseCase) get(ctx context.Context, userID, itemID int64) (*dto.CartItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.WithDetail(domain.ErrNotFound, "Cart item not found")
	}
	out := dto.FromCartItem(item)
	return &out, nil
}
