package repository

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// OrderFilter criterios del listado de administración.
type OrderFilter struct {
	UserID *int64
	Status string
	Limit  int
	Offset int
}

// OrderRepository persistencia de pedidos. Create inserta cabecera y líneas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id int64, status, paymentStatus string) error
}
