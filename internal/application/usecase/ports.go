package usecase

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con los repos que toca el checkout.
// Si fn retorna error se hace rollback.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orders repository.OrderRepository,
		products repository.ProductRepository,
		cart repository.CartRepository,
	) error) error
}
