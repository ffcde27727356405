package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el panel de administración.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountOrders cuenta pedidos; status vacío cuenta todos.
func (r *StatsRepo) CountOrders(ctx context.Context, status string) (int64, error) {
	if status == "" {
		return r.count(ctx, `SELECT COUNT(*) FROM orders`)
	}
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status)
}

// Revenue suma total_amount de los pedidos con el estado de pago dado.
// Usa COALESCE para devolver cero si no hay filas.
func (r *StatsRepo) Revenue(ctx context.Context, paymentStatus string) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, paymentStatus).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.Revenue: %w", err)
	}
	return total, nil
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}
