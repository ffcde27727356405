package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas agregadas (read-only) del panel de administración.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context, status string) (int64, error) // status vacío = todos
	// Revenue suma total_amount de los pedidos con el estado de pago indicado.
	Revenue(ctx context.Context, paymentStatus string) (decimal.Decimal, error)
}
