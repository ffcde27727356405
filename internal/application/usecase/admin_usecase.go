package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
)

const (
	defaultOrderLimit = 100
	maxOrderLimit     = 500
)

// AdminUseCase gestión de pedidos y del feed de notificaciones desde el panel.
type AdminUseCase struct {
	orderRepo repository.OrderRepository
	feed      *storefront.NotificationFeed
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(orderRepo repository.OrderRepository, feed *storefront.NotificationFeed) *AdminUseCase {
	if feed == nil {
		feed = storefront.NewNotificationFeed()
	}
	return &AdminUseCase{orderRepo: orderRepo, feed: feed}
}

// ListOrders todos los pedidos, opcionalmente filtrados por estado.
func (uc *AdminUseCase) ListOrders(ctx context.Context, q dto.OrderListQuery) ([]dto.OrderResponse, error) {
	q.Normalize(defaultOrderLimit, maxOrderLimit)
	status := strings.TrimSpace(q.Status)
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, invalidStatus()
	}
	list, err := uc.orderRepo.List(ctx, repository.OrderFilter{Status: status, Limit: q.Limit, Offset: q.Skip})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrder(o))
	}
	return out, nil
}

// UpdateOrderStatus cambia el estado del pedido. Un pedido contra entrega entregado queda pagado.
func (uc *AdminUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*dto.MessageResponse, error) {
	status = strings.TrimSpace(status)
	if !entity.IsValidOrderStatus(status) {
		return nil, invalidStatus()
	}
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.WithDetail(domain.ErrNotFound, "Order not found")
	}
	payment := o.PaymentStatus
	if status == entity.OrderStatusDelivered && o.PaymentMethod == entity.PaymentMethodCOD {
		payment = entity.PaymentStatusCompleted
	}
	if err := uc.orderRepo.UpdateStatus(ctx, orderID, status, payment); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Order status updated to %s", status)}, nil
}

// Notifications feed actual, la más reciente primero.
func (uc *AdminUseCase) Notifications() []dto.NotificationResponse {
	list := uc.feed.List()
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.FromNotification(n))
	}
	return out
}

// ClearNotification descarta una notificación.
func (uc *AdminUseCase) ClearNotification(id string) error {
	if !uc.feed.Clear(id) {
		return domain.WithDetail(domain.ErrNotFound, "Notification not found")
	}
	return nil
}

func invalidStatus() error {
	return domain.WithDetail(domain.ErrInvalidInput, "Invalid status. Must be one of: %s", strings.Join(entity.OrderStatuses, ", "))
}
