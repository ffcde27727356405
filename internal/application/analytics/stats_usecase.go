// Package analytics contiene los casos de uso de métricas del panel de administración.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// StatsUseCase genera el resumen del panel de administración.
//
// Fuente de datos: StatsRepository (consultas read-only).
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats construye el StatsResponse.
//
// Cinco consultas en paralelo:
//  1. CountUsers
//  2. CountProducts
//  3. CountOrders(todos)
//  4. Revenue(payment_status = completed)
//  5. CountOrders(pending)
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}

	usersCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)

	go func() {
		n, err := uc.statsRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrders(ctx, "")
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrders(ctx, entity.OrderStatusPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.statsRepo.Revenue(ctx, entity.PaymentStatusCompleted)
		revenueCh <- revenueResult{total, err}
	}()

	users := <-usersCh
	products := <-productsCh
	orders := <-ordersCh
	pending := <-pendingCh
	revenue := <-revenueCh

	if users.err != nil {
		return nil, fmt.Errorf("stats: usuarios: %w", users.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("stats: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("stats: pedidos: %w", orders.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("stats: pedidos pendientes: %w", pending.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("stats: ingresos: %w", revenue.err)
	}

	return &dto.StatsResponse{
		TotalUsers:    users.n,
		TotalProducts: products.n,
		TotalOrders:   orders.n,
		TotalRevenue:  revenue.total.Round(2),
		PendingOrders: pending.n,
	}, nil
}
