package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/pkg/logger"
	"github.com/jhoicas/dailycare-store/pkg/money"
)

var tracer = otel.Tracer("github.com/jhoicas/dailycare-store/internal/application/usecase")

// OrderUseCase checkout y consulta de pedidos del cliente.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	pdf       ports.InvoicePDFGenerator
	feed      *storefront.NotificationFeed
	log       *logger.Logger
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. pdf y feed pueden ser nil.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	pdf ports.InvoicePDFGenerator,
	feed *storefront.NotificationFeed,
	log *logger.Logger,
) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		pdf:       pdf,
		feed:      feed,
		log:       log.Component("orders"),
		now:       time.Now,
	}
}

// Place crea el pedido en una sola transacción:
//  1. valida productos y stock, congelando el precio unitario
//  2. total = subtotal + GST 18%
//  3. inserta cabecera y líneas, descuenta stock y vacía el carrito
//
// Las líneas repetidas del mismo producto se fusionan.
func (uc *OrderUseCase) Place(ctx context.Context, userID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	ctx, span := tracer.Start(ctx, "order.place")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int("lines", len(in.Items)))

	if len(in.Items) == 0 {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Order must contain at least one item")
	}
	if len(in.ShippingAddress) == 0 {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Shipping address is required")
	}
	lines := &storefront.Cart{}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.WithDetail(domain.ErrInvalidInput, "Quantity must be greater than zero")
		}
		lines.AddQuantity(storefront.Product{ID: it.ProductID}, it.Quantity)
	}
	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		method = entity.PaymentMethodCOD
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   method,
		PaymentStatus:   entity.PaymentStatusPending,
		CreatedAt:       uc.now(),
	}
	err := uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository, products repository.ProductRepository, cart repository.CartRepository) error {
		for _, l := range lines.OrderLines() {
			p, err := products.GetByID(ctx, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.WithDetail(domain.ErrProductNotFound, "Product %d not found", l.ProductID)
			}
			if !p.InStock(l.Quantity) {
				return domain.WithDetail(domain.ErrInsufficientStock, "Insufficient stock for %s", p.Name)
			}
			order.Items = append(order.Items, entity.OrderItem{ProductID: p.ID, Quantity: l.Quantity, Price: p.Price, Product: p})
		}
		order.TotalAmount = money.WithGST(order.Subtotal())

		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		for _, it := range order.Items {
			if err := products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return domain.WithDetail(domain.ErrInsufficientStock, "Insufficient stock for %s", it.Product.Name)
				}
				return err
			}
		}
		return cart.ClearByUser(ctx, userID)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order_id", order.ID), attribute.String("total", order.TotalAmount.String()))

	uc.log.Info().Int64("order_id", order.ID).Int64("user_id", userID).Str("total", order.TotalAmount.String()).Msg("pedido creado")
	if uc.feed != nil {
		uc.feed.Push(storefront.NotificationOrder, fmt.Sprintf("New order #%d placed", order.ID))
	}
	return uc.GetByID(ctx, userID, order.ID)
}

// List pedidos del usuario, los más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, userID int64) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx, repository.OrderFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrder(o))
	}
	return out, nil
}

// GetByID pedido del usuario; los pedidos ajenos se reportan como inexistentes.
func (uc *OrderUseCase) GetByID(ctx context.Context, userID, orderID int64) (*dto.OrderResponse, error) {
	o, err := uc.owned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(o)
	return &out, nil
}

// Invoice genera el PDF del pedido del usuario.
func (uc *OrderUseCase) Invoice(ctx context.Context, userID, orderID int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotConfigured
	}
	o, err := uc.owned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.userRepo.GetByID(ctx, o.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.pdf.GenerateOrderInvoice(o, customer)
}

func (uc *OrderUseCase) owned(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, domain.WithDetail(domain.ErrNotFound, "Order not found")
	}
	return o, nil
}
