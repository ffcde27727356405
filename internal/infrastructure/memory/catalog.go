package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// CategoryRepository implementación en memoria de repository.CategoryRepository.
type CategoryRepository struct{ s *Store }

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.categories {
		if ex.Slug == c.Slug || ex.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.s.nextID()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *CategoryRepository) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.categories, id)
	return nil
}

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.products {
		if ex.Slug == p.Slug {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.s.nextID()
	r.s.products[p.ID] = r.s.cloneProduct(p)
	p.Category = r.s.products[p.ID].Category
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		return r.s.cloneProduct(p), nil
	}
	return nil, nil
}

func (r *ProductRepository) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Slug == slug {
			return r.s.cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.s.products[p.ID] = r.s.cloneProduct(p)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	search := strings.ToLower(f.Search)
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		switch {
		case f.OnlyActive && !p.IsActive,
			f.CategoryID != nil && p.CategoryID != *f.CategoryID,
			f.ProductType != "" && p.ProductType != f.ProductType,
			f.MinPrice != nil && p.Price.LessThan(*f.MinPrice),
			f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice),
			search != "" && !strings.Contains(strings.ToLower(p.Name), search),
			f.IsBestseller != nil && p.IsBestseller != *f.IsBestseller,
			f.IsNew != nil && p.IsNew != *f.IsNew:
			continue
		}
		out = append(out, r.s.cloneProduct(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch f.SortBy {
		case repository.SortPriceLow:
			return a.Price.LessThan(b.Price)
		case repository.SortPriceHigh:
			return a.Price.GreaterThan(b.Price)
		case repository.SortRating:
			return a.Rating > b.Rating
		case repository.SortNewest:
			return a.CreatedAt.After(b.CreatedAt) || (a.CreatedAt.Equal(b.CreatedAt) && a.ID > b.ID)
		default:
			if a.IsBestseller != b.IsBestseller {
				return a.IsBestseller
			}
			return a.CreatedAt.After(b.CreatedAt) || (a.CreatedAt.Equal(b.CreatedAt) && a.ID > b.ID)
		}
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r *ProductRepository) DecrementStock(_ context.Context, productID int64, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	cp := r.s.cloneProduct(p)
	cp.Stock -= qty
	r.s.products[productID] = cp
	return nil
}

// cloneProduct copia el producto y resuelve su categoría (como el LEFT JOIN de postgres).
// Requiere s.mu tomado.
func (s *Store) cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	cp.Ingredients = append([]string(nil), p.Ingredients...)
	cp.Benefits = append([]string(nil), p.Benefits...)
	cp.Category = nil
	if c, ok := s.categories[p.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	return &cp
}
