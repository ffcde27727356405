package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
)

// ListProducts catálogo filtrado. Los campos vacíos no se envían.
func (c *Client) ListProducts(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", productQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func productQuery(q dto.ProductListQuery) url.Values {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("category", q.Category)
	set("product_type", q.ProductType)
	set("search", q.Search)
	set("sort_by", q.SortBy)
	if q.MinPrice != nil {
		v.Set("min_price", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		v.Set("max_price", q.MaxPrice.String())
	}
	return v
}

// Bestsellers productos destacados como más vendidos.
func (c *Client) Bestsellers(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	return c.productList(ctx, "/api/products/bestsellers", limit)
}

// NewArrivals productos marcados como nuevos.
func (c *Client) NewArrivals(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	return c.productList(ctx, "/api/products/new-arrivals", limit)
}

func (c *Client) productList(ctx context.Context, path string, limit int) ([]dto.ProductResponse, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct producto por ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, idPath("/api/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProductBySlug producto por slug.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products/slug/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories todas las categorías.
func (c *Client) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategory categoría por ID.
func (c *Client) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, idPath("/api/categories/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
