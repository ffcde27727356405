package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
)

func intPtr(n int) *int { return &n }

func TestCartAdd_ExistenteIncrementaSinDuplicar(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "499.50", 10)
	feed := storefront.NewNotificationFeed()
	uc := NewCartUseCase(store.Cart(), store.Products(), feed)
	ctx := context.Background()

	first, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID, Quantity: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, err := uc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	notes := feed.List()
	require.Len(t, notes, 2)
	assert.Equal(t, "Rose Serum was added to cart", notes[0].Message)
	assert.Equal(t, storefront.NotificationCart, notes[0].Type)
}

func TestCartAdd_ProductoInexistenteYCantidadInvalida(t *testing.T) {
	store := memory.NewStore()
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: 77})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = uc.Add(ctx, 1, dto.CartItemRequest{ProductID: 77, Quantity: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCartSummary_TotalYCount(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	a := seedProduct(t, store, cat.ID, "Rose Serum", "499.50", 10)
	b := seedProduct(t, store, cat.ID, "Aloe Cream", "250", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: a.ID, Quantity: intPtr(2)})
	require.NoError(t, err)
	_, err = uc.Add(ctx, 1, dto.CartItemRequest{ProductID: b.ID})
	require.NoError(t, err)

	sum, err := uc.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1249", sum.Total.String())
	assert.Equal(t, 3, sum.Count)
	assert.Len(t, sum.Items, 2)
}

func TestCartUpdateQuantity_CeroElimina(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "100", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	item, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID})
	require.NoError(t, err)

	updated, err := uc.UpdateQuantity(ctx, 1, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	removed, err := uc.UpdateQuantity(ctx, 1, item.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, removed)

	items, err := uc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCart_LineaAjenaNoSeToca(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "100", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	item, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID})
	require.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, 2, item.ID, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Remove(ctx, 2, item.ID), domain.ErrNotFound)

	require.NoError(t, uc.Remove(ctx, 1, item.ID))
}

func TestCartClear(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "100", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID})
	require.NoError(t, err)
	_, err = uc.Add(ctx, 2, dto.CartItemRequest{ProductID: p.ID})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, 1))
	mine, _ := uc.List(ctx, 1)
	others, _ := uc.List(ctx, 2)
	assert.Empty(t, mine)
	assert.Len(t, others, 1)
}

func TestWishlist_SinDuplicadosYRemove(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "100", 10)
	uc := NewWishlistUseCase(store.Wishlist(), store.Products())
	ctx := context.Background()

	item, err := uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "Rose Serum", item.Product.Name)

	_, err = uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: p.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyInWishlist)

	_, err = uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: 999})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, uc.Remove(ctx, 1, p.ID))
	assert.ErrorIs(t, uc.Remove(ctx, 1, p.ID), domain.ErrNotFound)
}

func TestCartAdd_ConcurrenteUnaSolaLinea(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "499.50", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID, Quantity: intPtr(2)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := uc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 40, items[0].Quantity)
}

func TestCartQuantity_TopePorLinea(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "499.50", 10)
	uc := NewCartUseCase(store.Cart(), store.Products(), nil)
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID, Quantity: intPtr(3000000000)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "Quantity must be at most 999")

	item, err := uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID, Quantity: intPtr(maxCartQuantity)})
	require.NoError(t, err)
	item, err = uc.Add(ctx, 1, dto.CartItemRequest{ProductID: p.ID, Quantity: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, maxCartQuantity, item.Quantity)

	_, err = uc.UpdateQuantity(ctx, 1, item.ID, maxCartQuantity+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
