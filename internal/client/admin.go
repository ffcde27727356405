package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
)

func pageValues(p dto.PageRequest) url.Values {
	v := url.Values{}
	if p.Skip > 0 {
		v.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// Stats estadísticas del panel.
func (c *Client) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers usuarios paginados.
func (c *Client) ListUsers(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", pageValues(page), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser usuario por ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, idPath("/api/admin/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser cambia is_admin / is_active.
func (c *Client) UpdateUser(ctx context.Context, id int64, in dto.AdminUserUpdateRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPut, idPath("/api/admin/users/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleAdmin alterna el rol de administrador.
func (c *Client) ToggleAdmin(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPut, idPath("/api/admin/users/%d/toggle-admin", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive activa o desactiva un usuario.
func (c *Client) ToggleActive(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPut, idPath("/api/admin/users/%d/toggle-active", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct alta de producto.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct actualización parcial.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, idPath("/api/admin/products/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct baja de producto.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/admin/products/%d", id), nil, nil, nil)
}

// CreateCategory alta de categoría.
func (c *Client) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/categories", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory baja de categoría.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/admin/categories/%d", id), nil, nil, nil)
}

// AdminOrders todos los pedidos, opcionalmente filtrados por estado.
func (c *Client) AdminOrders(ctx context.Context, page dto.PageRequest, status string) ([]dto.OrderResponse, error) {
	q := pageValues(page)
	if status != "" {
		q.Set("status", status)
	}
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus cambia el estado de un pedido.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	q := url.Values{"status": {status}}
	if err := c.do(ctx, http.MethodPut, idPath("/api/admin/orders/%d/status", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Notifications feed de notificaciones del panel.
func (c *Client) Notifications(ctx context.Context) ([]dto.NotificationResponse, error) {
	var out []dto.NotificationResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearNotification descarta una notificación.
func (c *Client) ClearNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/notifications/"+url.PathEscape(id), nil, nil, nil)
}

// UploadImage sube una imagen de producto como multipart "file".
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filename)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("client: armar multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("client: leer imagen: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("client: cerrar multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload/image", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	raw, err := c.send(req)
	if err != nil {
		return nil, err
	}
	var out dto.UploadResponse
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
