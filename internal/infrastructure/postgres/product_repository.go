package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns columnas de producto + categoría en el orden que espera productScan.
const productColumns = `p.id, p.name, p.slug, p.description, p.price, p.original_price, p.image, p.images,
	       p.category_id, p.product_type, p.rating, p.reviews_count, p.stock,
	       p.is_new, p.is_bestseller, p.is_active, p.ingredients, p.benefits, p.created_at, p.updated_at,
	       c.id, c.name, c.slug, c.description, c.icon, c.image`

const productSelect = `
	SELECT ` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y completa ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, slug, description, price, original_price, image, images, category_id,
		                      product_type, rating, reviews_count, stock, is_new, is_bestseller, is_active,
		                      ingredients, benefits, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Slug, p.Description, p.Price, p.OriginalPrice, p.Image, jsonList(p.Images), p.CategoryID,
		p.ProductType, p.Rating, p.ReviewsCount, p.Stock, p.IsNew, p.IsBestseller, p.IsActive,
		jsonList(p.Ingredients), jsonList(p.Benefits), p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.findOne(ctx, productSelect+` WHERE p.id = $1`, id)
}

// GetBySlug obtiene un producto por slug con su categoría.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return r.findOne(ctx, productSelect+` WHERE p.slug = $1`, slug)
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, original_price = $5, image = $6, images = $7,
		       category_id = $8, product_type = $9, stock = $10, is_new = $11, is_bestseller = $12, is_active = $13,
		       ingredients = $14, benefits = $15, rating = $16, reviews_count = $17, updated_at = $18
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.Image, jsonList(p.Images),
		p.CategoryID, p.ProductType, p.Stock, p.IsNew, p.IsBestseller, p.IsActive,
		jsonList(p.Ingredients), jsonList(p.Benefits), p.Rating, p.ReviewsCount, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto. Si figura en pedidos → ErrConflict (desactivarlo en su lugar).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista productos aplicando los filtros presentes en f.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query, args := buildProductListQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DecrementStock descuenta qty solo si alcanza el stock (UPDATE condicional, sin lecturas previas).
func (r *ProductRepo) DecrementStock(ctx context.Context, productID int64, qty int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		productID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// buildProductListQuery arma el SELECT con filtros parametrizados, orden y paginación.
func buildProductListQuery(f repository.ProductFilter) (string, []any) {
	var where []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.OnlyActive {
		where = append(where, "p.is_active = TRUE")
	}
	if f.CategoryID != nil {
		add("p.category_id = $%d", *f.CategoryID)
	}
	if f.ProductType != "" {
		add("p.product_type = $%d", f.ProductType)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.Search != "" {
		add("p.name ILIKE $%d", "%"+escapeLike(f.Search)+"%")
	}
	if f.IsBestseller != nil {
		add("p.is_bestseller = $%d", *f.IsBestseller)
	}
	if f.IsNew != nil {
		add("p.is_new = $%d", *f.IsNew)
	}

	var b strings.Builder
	b.WriteString(productSelect)
	if len(where) > 0 {
		b.WriteString("\n\tWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString("\n\tORDER BY ")
	switch f.SortBy {
	case repository.SortPriceLow:
		b.WriteString("p.price ASC, p.id")
	case repository.SortPriceHigh:
		b.WriteString("p.price DESC, p.id")
	case repository.SortRating:
		b.WriteString("p.rating DESC, p.id")
	case repository.SortNewest:
		b.WriteString("p.created_at DESC, p.id DESC")
	default:
		b.WriteString("p.is_bestseller DESC, p.created_at DESC, p.id DESC")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *ProductRepo) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var ps productScan
	if err := row.Scan(ps.dest()...); err != nil {
		return nil, err
	}
	return ps.product(), nil
}

// productScan destinos intermedios para las columnas JSONB y la categoría del LEFT JOIN.
// Permite anteponer otras columnas (carrito, wishlist, líneas de pedido) en el mismo Scan.
type productScan struct {
	p                                                   entity.Product
	images, ingredients, benefits                       []byte
	catID                                               *int64
	catName, catSlug, catDescription, catIcon, catImage *string
}

func (s *productScan) dest() []any {
	p := &s.p
	return []any{
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.OriginalPrice, &p.Image, &s.images,
		&p.CategoryID, &p.ProductType, &p.Rating, &p.ReviewsCount, &p.Stock,
		&p.IsNew, &p.IsBestseller, &p.IsActive, &s.ingredients, &s.benefits, &p.CreatedAt, &p.UpdatedAt,
		&s.catID, &s.catName, &s.catSlug, &s.catDescription, &s.catIcon, &s.catImage,
	}
}

func (s *productScan) product() *entity.Product {
	p := s.p
	p.Images = parseJSONList(s.images)
	p.Ingredients = parseJSONList(s.ingredients)
	p.Benefits = parseJSONList(s.benefits)
	if s.catID != nil {
		p.Category = &entity.Category{
			ID:          *s.catID,
			Name:        deref(s.catName),
			Slug:        deref(s.catSlug),
			Description: deref(s.catDescription),
			Icon:        deref(s.catIcon),
			Image:       deref(s.catImage),
		}
	}
	return &p
}
