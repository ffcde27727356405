package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
)

// Cart líneas del carrito persistido.
func (c *Client) Cart(ctx context.Context) ([]dto.CartItemResponse, error) {
	var out []dto.CartItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CartSummary carrito con total y cantidad de unidades.
func (c *Client) CartSummary(ctx context.Context) (*dto.CartSummaryResponse, error) {
	var out dto.CartSummaryResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCart agrega quantity unidades del producto.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*dto.CartItemResponse, error) {
	var out dto.CartItemResponse
	in := dto.CartItemRequest{ProductID: productID, Quantity: &quantity}
	if err := c.do(ctx, http.MethodPost, "/api/cart", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartItem cambia la cantidad; con quantity <= 0 la API borra la línea y devuelve nil.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*dto.CartItemResponse, error) {
	q := url.Values{"quantity": {strconv.Itoa(quantity)}}
	var out dto.CartItemResponse
	if err := c.do(ctx, http.MethodPut, idPath("/api/cart/%d", itemID), q, nil, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

// RemoveCartItem borra una línea.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/cart/%d", itemID), nil, nil, nil)
}

// ClearCart vacía el carrito persistido.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", nil, nil, nil)
}

// Wishlist productos guardados.
func (c *Client) Wishlist(ctx context.Context) ([]dto.WishlistItemResponse, error) {
	var out []dto.WishlistItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/wishlist", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToWishlist guarda un producto.
func (c *Client) AddToWishlist(ctx context.Context, productID int64) (*dto.WishlistItemResponse, error) {
	var out dto.WishlistItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/wishlist", nil, dto.WishlistItemRequest{ProductID: productID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromWishlist quita un producto guardado.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/wishlist/%d", productID), nil, nil, nil)
}

// PlaceOrder confirma un pedido con las líneas del carrito local.
func (c *Client) PlaceOrder(ctx context.Context, lines []storefront.OrderLine, address map[string]any, paymentMethod string) (*dto.OrderResponse, error) {
	in := dto.CreateOrderRequest{
		Items:           make([]dto.OrderItemRequest, 0, len(lines)),
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	}
	for _, l := range lines {
		in.Items = append(in.Items, dto.OrderItemRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders pedidos del usuario, más recientes primero.
func (c *Client) Orders(ctx context.Context) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder pedido propio por ID.
func (c *Client) GetOrder(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, idPath("/api/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderInvoice comprobante PDF del pedido.
func (c *Client) OrderInvoice(ctx context.Context, id int64) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, idPath("/api/orders/%d/invoice", id), nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")
	return c.send(req)
}
