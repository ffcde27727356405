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

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

const wishlistSelect = `
	SELECT w.id, w.user_id, w.product_id, ` + productColumns + `
	FROM wishlist_items w
	JOIN products p ON p.id = w.product_id
	LEFT JOIN categories c ON c.id = p.category_id`

// WishlistRepo lista de deseos en PostgreSQL.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador de la lista de deseos.
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

func (r *WishlistRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistItem, error) {
	rows, err := r.q.Query(ctx, wishlistSelect+` WHERE w.user_id = $1 ORDER BY w.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	var items []*entity.WishlistItem
	for rows.Next() {
		it, err := scanWishlistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *WishlistRepo) GetByProduct(ctx context.Context, userID, productID int64) (*entity.WishlistItem, error) {
	it, err := scanWishlistItem(r.q.QueryRow(ctx,
		wishlistSelect+` WHERE w.user_id = $1 AND w.product_id = $2`, userID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wishlist item: %w", err)
	}
	return it, nil
}

func (r *WishlistRepo) Create(ctx context.Context, item *entity.WishlistItem) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO wishlist_items (user_id, product_id) VALUES ($1, $2) RETURNING id`,
		item.UserID, item.ProductID,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInWishlist
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepo) DeleteByProduct(ctx context.Context, userID, productID int64) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, fmt.Errorf("delete wishlist item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanWishlistItem(row pgx.Row) (*entity.WishlistItem, error) {
	var it entity.WishlistItem
	var ps productScan
	dest := append([]any{&it.ID, &it.UserID, &it.ProductID}, ps.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	it.Product = ps.product()
	return &it, nil
}
