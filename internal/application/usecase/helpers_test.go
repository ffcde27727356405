package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
)

func seedCategory(t *testing.T, store *memory.Store, name, slug string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, Slug: slug}
	require.NoError(t, store.Categories().Create(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, store *memory.Store, categoryID int64, name, price string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:        name,
		Slug:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		ProductType: entity.ProductTypeSerum,
		Stock:       stock,
		IsActive:    true,
	}
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

func seedUser(t *testing.T, store *memory.Store, email string, admin bool) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, FullName: email, IsActive: true, IsAdmin: admin}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}
