package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

const cartSelect = `
	SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ` + productColumns + `
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	LEFT JOIN categories c ON c.id = p.category_id`

// CartRepo carrito persistido en PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito. Pasar pool o tx.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListByUser devuelve las líneas del usuario en orden de inserción.
func (r *CartRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	rows, err := r.q.Query(ctx, cartSelect+` WHERE ci.user_id = $1 ORDER BY ci.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	var items []*entity.CartItem
	for rows.Next() {
		it, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID obtiene una línea solo si pertenece al usuario.
func (r *CartRepo) GetByID(ctx context.Context, userID, itemID int64) (*entity.CartItem, error) {
	return r.findOne(ctx, cartSelect+` WHERE ci.user_id = $1 AND ci.id = $2`, userID, itemID)
}

// Add hace upsert sobre UNIQUE (user_id, product_id); dos altas simultáneas terminan en una línea.
func (r *CartRepo) Add(ctx context.Context, item *entity.CartItem, maxQuantity int) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = LEAST(cart_items.quantity + EXCLUDED.quantity, $4)
		RETURNING id, quantity`,
		item.UserID, item.ProductID, item.Quantity, maxQuantity,
	).Scan(&item.ID, &item.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de una línea.
func (r *CartRepo) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	tag, err := r.q.Exec(ctx, `UPDATE cart_items SET quantity = $2 WHERE id = $1`, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una línea.
func (r *CartRepo) Delete(ctx context.Context, itemID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ClearByUser vacía el carrito del usuario.
func (r *CartRepo) ClearByUser(ctx context.Context, userID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *CartRepo) findOne(ctx context.Context, query string, args ...any) (*entity.CartItem, error) {
	it, err := scanCartItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return it, nil
}

func scanCartItem(row pgx.Row) (*entity.CartItem, error) {
	var it entity.CartItem
	var ps productScan
	dest := append([]any{&it.ID, &it.UserID, &it.ProductID, &it.Quantity}, ps.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	it.Product = ps.product()
	return &it, nil
}
