package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreate_GeneraSlugDesdeNombre(t *testing.T) {
	store := memory.NewStore()
	uc := NewCategoryUseCase(store.Categories())

	c, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "  Cuidado Facial ", Icon: strPtr("✨")})
	require.NoError(t, err)
	assert.Equal(t, "Cuidado Facial", c.Name)
	assert.Equal(t, "cuidado-facial", c.Slug)
	require.NotNil(t, c.Icon)
	assert.Equal(t, "✨", *c.Icon)
	assert.Nil(t, c.Description)
}

func TestCategoryCreate_NombreSinLatinoRecibeSlugPropio(t *testing.T) {
	uc := NewCategoryUseCase(memory.NewStore().Categories())
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CategoryRequest{Name: "त्वचा"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CategoryRequest{Name: "बाल"})
	require.NoError(t, err)
	assert.Regexp(t, `^c-[0-9a-f]{8}$`, a.Slug)
	assert.NotEqual(t, a.Slug, b.Slug)
}

func TestCategoryCreate_NombreVacioODuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := NewCategoryUseCase(store.Categories())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "Makeup"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "Makeup"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_ConProductosRetornaConflicto(t *testing.T) {
	store := memory.NewStore()
	uc := NewCategoryUseCase(store.Categories())
	ctx := context.Background()
	full := seedCategory(t, store, "Skincare", "skincare")
	seedProduct(t, store, full.ID, "Night Cream", "650", 3)
	empty := seedCategory(t, store, "Wellness", "wellness")

	assert.ErrorIs(t, uc.Delete(ctx, full.ID), domain.ErrConflict)
	require.NoError(t, uc.Delete(ctx, empty.ID))

	_, err := uc.GetByID(ctx, empty.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, empty.ID), domain.ErrNotFound)
}

func TestWishlistAdd_SinDuplicados(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Haircare", "haircare")
	p := seedProduct(t, store, cat.ID, "Argan Oil", "799", 8)
	uc := NewWishlistUseCase(store.Wishlist(), store.Products())
	ctx := context.Background()

	item, err := uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, p.ID, item.ProductID)
	assert.Equal(t, "Argan Oil", item.Product.Name)

	_, err = uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: p.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyInWishlist)

	// Otro usuario puede guardar el mismo producto.
	_, err = uc.Add(ctx, 2, dto.WishlistItemRequest{ProductID: p.ID})
	require.NoError(t, err)

	list, err := uc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Argan Oil", list[0].Product.Name)
}

func TestWishlistAdd_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := NewWishlistUseCase(store.Wishlist(), store.Products())

	_, err := uc.Add(context.Background(), 1, dto.WishlistItemRequest{ProductID: 99})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestWishlistRemove_ItemAusenteEsNotFound(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Bodycare", "bodycare")
	p := seedProduct(t, store, cat.ID, "Body Scrub", "450", 5)
	uc := NewWishlistUseCase(store.Wishlist(), store.Products())
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, dto.WishlistItemRequest{ProductID: p.ID})
	require.NoError(t, err)
	require.NoError(t, uc.Remove(ctx, 1, p.ID))

	err = uc.Remove(ctx, 1, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Item not in wishlist")
}
