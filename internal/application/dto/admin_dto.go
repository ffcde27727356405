package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsResponse métricas del panel de administración.
type StatsResponse struct {
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingOrders int64           `json:"pending_orders"`
}

// NotificationResponse notificación del feed de administración.
type NotificationResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// UploadResponse imagen subida.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
