package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/pkg/slug"
)

const (
	defaultProductLimit = 100
	maxProductLimit     = 100
	defaultShowcase     = 4 // bestsellers / new-arrivals en la home
	feedLimit           = 1000
)

// ProductUseCase casos de uso del catálogo: listado con filtros, vitrinas, CRUD de administración y feed.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	feed         ports.ProductFeedBuilder
	now          func() time.Time
}

// NewProductUseCase construye el caso de uso. feed puede ser nil si no se publica el XML.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, feed ports.ProductFeedBuilder) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, feed: feed, now: time.Now}
}

// List lista productos activos. Una categoría (slug) inexistente no filtra.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	q.Normalize(defaultProductLimit, maxProductLimit)
	f := repository.ProductFilter{
		ProductType: strings.TrimSpace(q.ProductType),
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		Search:      strings.TrimSpace(q.Search),
		OnlyActive:  true,
		SortBy:      q.SortBy,
		Limit:       q.Limit,
		Offset:      q.Skip,
	}
	if q.Category != "" {
		cat, err := uc.categoryRepo.GetBySlug(ctx, q.Category)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			f.CategoryID = &cat.ID
		}
	}
	return uc.list(ctx, f)
}

// Bestsellers productos activos marcados como bestseller.
func (uc *ProductUseCase) Bestsellers(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	yes := true
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true, IsBestseller: &yes, Limit: showcaseLimit(limit)})
}

// NewArrivals productos activos marcados como nuevos.
func (uc *ProductUseCase) NewArrivals(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	yes := true
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true, IsNew: &yes, SortBy: repository.SortNewest, Limit: showcaseLimit(limit)})
}

// GetByID obtiene un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// GetBySlug obtiene un producto por slug; ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Create crea un producto. El slug se genera desde el nombre si no viene.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Product name is required")
	}
	if !in.Price.IsPositive() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Price must be greater than zero")
	}
	if in.Stock < 0 {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Stock cannot be negative")
	}
	if err := uc.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	s := slug.Make(in.Slug)
	if s == "" {
		s = slug.Make(name)
	}
	if s == "" {
		s = slug.Random("p")
	}
	product := &entity.Product{
		Name:         name,
		Slug:         s,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		Images:       in.Images,
		CategoryID:   in.CategoryID,
		ProductType:  in.ProductType,
		Stock:        in.Stock,
		IsNew:        in.IsNew,
		IsBestseller: in.IsBestseller,
		IsActive:     true,
		Ingredients:  in.Ingredients,
		Benefits:     in.Benefits,
		CreatedAt:    uc.now(),
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = decimal.NewNullDecimal(*in.OriginalPrice)
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// Update aplica solo los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.WithDetail(domain.ErrInvalidInput, "Product name is required")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.WithDetail(domain.ErrInvalidInput, "Price must be greater than zero")
		}
		p.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		p.OriginalPrice = decimal.NewNullDecimal(*in.OriginalPrice)
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.CategoryID != nil {
		if err := uc.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	if in.ProductType != nil {
		p.ProductType = *in.ProductType
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.WithDetail(domain.ErrInvalidInput, "Stock cannot be negative")
		}
		p.Stock = *in.Stock
	}
	if in.IsNew != nil {
		p.IsNew = *in.IsNew
	}
	if in.IsBestseller != nil {
		p.IsBestseller = *in.IsBestseller
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Ingredients != nil {
		p.Ingredients = *in.Ingredients
	}
	if in.Benefits != nil {
		p.Benefits = *in.Benefits
	}
	now := uc.now()
	p.UpdatedAt = &now
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Feed serializa los productos activos con el constructor de feed configurado.
func (uc *ProductUseCase) Feed(ctx context.Context) ([]byte, error) {
	if uc.feed == nil {
		return nil, domain.ErrNotConfigured
	}
	list, err := uc.repo.List(ctx, repository.ProductFilter{OnlyActive: true, SortBy: repository.SortNewest, Limit: feedLimit})
	if err != nil {
		return nil, err
	}
	return uc.feed.BuildProductFeed(list)
}

func (uc *ProductUseCase) list(ctx context.Context, f repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

func (uc *ProductUseCase) ensureCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.WithDetail(domain.ErrInvalidInput, "category_id is required")
	}
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.WithDetail(domain.ErrNotFound, "Category not found")
	}
	return nil
}

func showcaseLimit(limit int) int {
	if limit <= 0 {
		return defaultShowcase
	}
	if limit > maxProductLimit {
		return maxProductLimit
	}
	return limit
}
