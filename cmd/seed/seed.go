package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/pkg/logger"
	"github.com/jhoicas/dailycare-store/pkg/slug"
)

// seedFile formato del YAML de carga inicial.
type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Products   []seedProduct  `yaml:"products"`
}

type seedCategory struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Image       string `yaml:"image"`
}

type seedProduct struct {
	Name          string   `yaml:"name"`
	Slug          string   `yaml:"slug"`
	Category      string   `yaml:"category"` // slug
	Description   string   `yaml:"description"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price"`
	Image         string   `yaml:"image"`
	Images        []string `yaml:"images"`
	ProductType   string   `yaml:"product_type"`
	Stock         int      `yaml:"stock"`
	IsNew         bool     `yaml:"is_new"`
	IsBestseller  bool     `yaml:"is_bestseller"`
	Ingredients   []string `yaml:"ingredients"`
	Benefits      []string `yaml:"benefits"`
}

// report resultado de una corrida.
type report struct {
	CategoriesAdded, CategoriesSkipped int
	ProductsAdded, ProductsSkipped     int
}

func parseSeed(raw []byte) (*seedFile, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("leer YAML: %w", err)
	}
	return &f, nil
}

// seeder inserta lo que falta; lo ya existente (por slug) se deja intacto.
type seeder struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	log        *logger.Logger
	now        func() time.Time
}

func (s *seeder) run(ctx context.Context, f *seedFile) (report, error) {
	var r report
	for _, c := range f.Categories {
		added, err := s.category(ctx, c)
		if err != nil {
			return r, err
		}
		if added {
			r.CategoriesAdded++
		} else {
			r.CategoriesSkipped++
		}
	}
	for _, p := range f.Products {
		added, err := s.product(ctx, p)
		if err != nil {
			return r, err
		}
		if added {
			r.ProductsAdded++
		} else {
			r.ProductsSkipped++
		}
	}
	return r, nil
}

func (s *seeder) category(ctx context.Context, c seedCategory) (bool, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return false, fmt.Errorf("categoría sin nombre")
	}
	sl := slug.Make(c.Slug)
	if sl == "" {
		sl = slug.Make(name)
	}
	if sl == "" {
		return false, fmt.Errorf("categoría %q: slug requerido", name)
	}
	existing, err := s.categories.GetBySlug(ctx, sl)
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.log.Info().Str("slug", sl).Msg("la categoría ya existe")
		return false, nil
	}
	cat := &entity.Category{
		Name:        name,
		Slug:        sl,
		Description: c.Description,
		Icon:        c.Icon,
		Image:       c.Image,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return false, fmt.Errorf("crear categoría %s: %w", sl, err)
	}
	s.log.Info().Str("slug", sl).Int64("id", cat.ID).Msg("categoría agregada")
	return true, nil
}

func (s *seeder) product(ctx context.Context, p seedProduct) (bool, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return false, fmt.Errorf("producto sin nombre")
	}
	sl := slug.Make(p.Slug)
	if sl == "" {
		sl = slug.Make(name)
	}
	if sl == "" {
		return false, fmt.Errorf("producto %q: slug requerido", name)
	}
	existing, err := s.products.GetBySlug(ctx, sl)
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.log.Info().Str("slug", sl).Msg("el producto ya existe")
		return false, nil
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil || !price.IsPositive() {
		return false, fmt.Errorf("producto %s: precio inválido %q", sl, p.Price)
	}
	cat, err := s.categories.GetBySlug(ctx, p.Category)
	if err != nil {
		return false, err
	}
	if cat == nil {
		return false, fmt.Errorf("producto %s: categoría %q no existe", sl, p.Category)
	}
	product := &entity.Product{
		Name:         name,
		Slug:         sl,
		Description:  p.Description,
		Price:        price,
		Image:        p.Image,
		Images:       p.Images,
		CategoryID:   cat.ID,
		ProductType:  p.ProductType,
		Stock:        p.Stock,
		IsNew:        p.IsNew,
		IsBestseller: p.IsBestseller,
		IsActive:     true,
		Ingredients:  p.Ingredients,
		Benefits:     p.Benefits,
		CreatedAt:    s.now(),
	}
	if p.OriginalPrice != "" {
		op, err := decimal.NewFromString(p.OriginalPrice)
		if err != nil {
			return false, fmt.Errorf("producto %s: original_price inválido %q", sl, p.OriginalPrice)
		}
		product.OriginalPrice = decimal.NewNullDecimal(op)
	}
	if err := s.products.Create(ctx, product); err != nil {
		return false, fmt.Errorf("crear producto %s: %w", sl, err)
	}
	s.log.Info().Str("slug", sl).Int64("id", product.ID).Msg("producto agregado")
	return true, nil
}
