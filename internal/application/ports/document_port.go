package ports

import (
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// InvoicePDFGenerator genera el comprobante PDF de un pedido.
type InvoicePDFGenerator interface {
	GenerateOrderInvoice(order *entity.Order, customer *entity.User) ([]byte, error)
}

// ProductFeedBuilder serializa el catálogo activo como feed XML (RSS + g:).
type ProductFeedBuilder interface {
	BuildProductFeed(products []*entity.Product) ([]byte, error)
}
