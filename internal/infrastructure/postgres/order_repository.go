package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, user_id, status, total_amount, shipping_address, payment_method, payment_status, created_at, updated_at`

const orderItemSelect = `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, ` + productColumns + `
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	LEFT JOIN categories c ON c.id = p.category_id`

// OrderRepo pedidos y sus líneas en PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Create debe correr dentro de una tx
// para que cabecera y líneas queden juntas.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y luego cada línea; completa IDs y CreatedAt.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	addr, err := json.Marshal(shippingAddress(o.ShippingAddress))
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, total_amount, shipping_address, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		o.UserID, o.Status, o.TotalAmount, addr, o.PaymentMethod, o.PaymentStatus,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		err := r.q.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4) RETURNING id`,
			o.ID, it.ProductID, it.Quantity, it.Price,
		).Scan(&it.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus líneas y productos.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List pedidos más recientes primero, filtrando por usuario y/o estado.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var where []string
	var args []any
	if f.UserID != nil {
		args = append(args, *f.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus cambia estado de pedido y de pago y marca updated_at.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status, paymentStatus string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
		id, status, paymentStatus)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// loadItems carga en una sola consulta las líneas de todos los pedidos dados.
func (r *OrderRepo) loadItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
		o.Items = []entity.OrderItem{}
	}
	rows, err := r.q.Query(ctx, orderItemSelect+` WHERE oi.order_id = ANY($1) ORDER BY oi.id`, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		var ps productScan
		dest := append([]any{&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price}, ps.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		it.Product = ps.product()
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var addr []byte
	if err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &addr,
		&o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.ShippingAddress = map[string]any{}
	if len(addr) > 0 {
		if err := json.Unmarshal(addr, &o.ShippingAddress); err != nil {
			return nil, fmt.Errorf("shipping address: %w", err)
		}
	}
	return &o, nil
}

func shippingAddress(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
