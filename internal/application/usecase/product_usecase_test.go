package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
)

func TestProductCreate_GeneraSlugYCargaCategoria(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Crème Éclat Vitamin C",
		Price:      decimal.RequireFromString("899"),
		CategoryID: cat.ID,
		Stock:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, "creme-eclat-vitamin-c", out.Slug)
	require.NotNil(t, out.Category)
	assert.Equal(t, "skincare", out.Category.Slug)
	assert.Equal(t, []string{}, out.Images)
	assert.True(t, out.IsActive)
}

func TestProductCreate_NombreSinLatinoRecibeSlugPropio(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)
	ctx := context.Background()

	rose, err := uc.Create(ctx, dto.CreateProductRequest{Name: "गुलाब जल", Price: decimal.NewFromInt(350), CategoryID: cat.ID})
	require.NoError(t, err)
	sandal, err := uc.Create(ctx, dto.CreateProductRequest{Name: "चंदन तेल", Price: decimal.NewFromInt(420), CategoryID: cat.ID})
	require.NoError(t, err)

	assert.Regexp(t, `^p-[0-9a-f]{8}$`, rose.Slug)
	assert.NotEqual(t, rose.Slug, sandal.Slug)

	got, err := store.Products().GetBySlug(ctx, sandal.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "चंदन तेल", got.Name)
}

func TestProductCreate_ValidaPrecioYCategoria(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Serum", Price: decimal.Zero, CategoryID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Serum", Price: decimal.NewFromInt(10), CategoryID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_FiltrosYOrden(t *testing.T) {
	store := memory.NewStore()
	skin := seedCategory(t, store, "Skincare", "skincare")
	hair := seedCategory(t, store, "Haircare", "haircare")
	seedProduct(t, store, skin.ID, "Rose Serum", "500", 5)
	seedProduct(t, store, skin.ID, "Aloe Cream", "250", 5)
	seedProduct(t, store, hair.ID, "Argan Oil", "750", 5)
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)
	ctx := context.Background()

	list, err := uc.List(ctx, dto.ProductListQuery{Category: "skincare", SortBy: "price_low"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aloe Cream", list[0].Name)
	assert.Equal(t, "Rose Serum", list[1].Name)

	minPrice := decimal.NewFromInt(300)
	list, err = uc.List(ctx, dto.ProductListQuery{MinPrice: &minPrice, SortBy: "price_high"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Argan Oil", list[0].Name)

	list, err = uc.List(ctx, dto.ProductListQuery{Search: "ROSE"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// una categoría inexistente no filtra
	list, err = uc.List(ctx, dto.ProductListQuery{Category: "no-existe"})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = uc.List(ctx, dto.ProductListQuery{PageRequest: dto.PageRequest{Skip: 1, Limit: 1}, SortBy: "price_low"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rose Serum", list[0].Name)
}

func TestProductList_OcultaInactivos(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "500", 5)
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)
	ctx := context.Background()

	off := false
	_, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{IsActive: &off})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)

	// el detalle sigue disponible por id
	_, err = uc.GetByID(ctx, p.ID)
	assert.NoError(t, err)
}

func TestProductBestsellers_LimitePorDefecto(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	for i := 0; i < 6; i++ {
		p := seedProduct(t, store, cat.ID, "p"+string(rune('a'+i)), "100", 1)
		p.IsBestseller = true
		require.NoError(t, store.Products().Update(context.Background(), p))
	}
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)

	list, err := uc.Bestsellers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestProductUpdate_Parcial(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	p := seedProduct(t, store, cat.ID, "Rose Serum", "500", 5)
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)

	stock := 42
	out, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 42, out.Stock)
	assert.Equal(t, "Rose Serum", out.Name)
	assert.NotNil(t, out.UpdatedAt)
}

func TestProductGetAndDelete_NoEncontrado(t *testing.T) {
	store := memory.NewStore()
	uc := NewProductUseCase(store.Products(), store.Categories(), nil)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = uc.GetBySlug(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 404), domain.ErrProductNotFound)
}

type captureFeed struct{ got []*entity.Product }

func (c *captureFeed) BuildProductFeed(products []*entity.Product) ([]byte, error) {
	c.got = products
	return []byte("<rss/>"), nil
}

func TestProductFeed_SoloActivos(t *testing.T) {
	store := memory.NewStore()
	cat := seedCategory(t, store, "Skincare", "skincare")
	seedProduct(t, store, cat.ID, "Rose Serum", "500", 5)
	hidden := seedProduct(t, store, cat.ID, "Old Cream", "100", 0)
	hidden.IsActive = false
	require.NoError(t, store.Products().Update(context.Background(), hidden))

	feed := &captureFeed{}
	uc := NewProductUseCase(store.Products(), store.Categories(), feed)

	body, err := uc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<rss/>", string(body))
	require.Len(t, feed.got, 1)
	assert.Equal(t, "Rose Serum", feed.got[0].Name)

	_, err = NewProductUseCase(store.Products(), store.Categories(), nil).Feed(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestCategory_CreateDuplicadoYDeleteConProductos(t *testing.T) {
	store := memory.NewStore()
	uc := NewCategoryUseCase(store.Categories())
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CategoryRequest{Name: "Body Care"})
	require.NoError(t, err)
	assert.Equal(t, "body-care", c.Slug)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "Body Care"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	seedProduct(t, store, c.ID, "Body Lotion", "300", 3)
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
}
