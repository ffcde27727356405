package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/analytics"
	"github.com/jhoicas/dailycare-store/internal/application/auth"
	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/feed"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/dailycare-store/internal/interfaces/http"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// testEnv API completa sobre el store en memoria.
type testEnv struct {
	app   *fiber.App
	store *memory.Store
	admin *entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	notifications := storefront.NewNotificationFeed()
	log := logger.Nop()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store.Users(), store.OTPs(), store.Resets(), nil, nil, auth.Config{
			JWT:       auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
			PublicURL: "http://localhost:5173",
		}, log),
		ProductUC:  usecase.NewProductUseCase(store.Products(), store.Categories(), feed.NewRSSBuilder("PureGlow", "https://pureglow.example")),
		CategoryUC: usecase.NewCategoryUseCase(store.Categories()),
		CartUC:     usecase.NewCartUseCase(store.Cart(), store.Products(), notifications),
		WishlistUC: usecase.NewWishlistUseCase(store.Wishlist(), store.Products()),
		OrderUC:    usecase.NewOrderUseCase(store, store.Orders(), store.Users(), pdf.NewOrderInvoiceGenerator("PureGlow"), notifications, log),
		UserUC:     usecase.NewUserUseCase(store.Users()),
		AdminUC:    usecase.NewAdminUseCase(store.Orders(), notifications),
		UploadUC:   usecase.NewUploadUseCase(nil, log),
		StatsUC:    analytics.NewStatsUseCase(store.Stats()),
		JWTSecret:  testJWTSecret,
		Log:        log,
	})

	admin := &entity.User{Email: "admin@pureglow.in", FullName: "Admin", IsActive: true, IsAdmin: true}
	require.NoError(t, store.Users().Create(context.Background(), admin))
	return &testEnv{app: app, store: store, admin: admin}
}

func (e *testEnv) adminToken(t *testing.T) string {
	return tokenFor(t, e.admin.ID, apphttp.RoleAdmin)
}

// do envía body como JSON (si no es nil) y devuelve la respuesta.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin registra un cliente y hace login con el formulario OAuth2.
func (e *testEnv) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: "secret123", FullName: "Priya Sharma",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	form := url.Values{"username": {email}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok := decode[dto.TokenResponse](t, resp)
	assert.Equal(t, "bearer", tok.TokenType)
	return "Bearer " + tok.AccessToken
}

// seedCatalog crea una categoría y un producto vía API de administración.
func (e *testEnv) seedCatalog(t *testing.T, stock int) dto.ProductResponse {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/admin/categories", e.adminToken(t), dto.CategoryRequest{Name: "Skincare"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cat := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, "skincare", cat.Slug)

	resp = e.do(t, http.MethodPost, "/api/products", e.adminToken(t), dto.CreateProductRequest{
		Name:        "Vitamin C Serum",
		Price:       decimal.RequireFromString("100.00"),
		CategoryID:  cat.ID,
		ProductType: entity.ProductTypeSerum,
		Stock:       stock,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func TestRouter_RaizYHealth(t *testing.T) {
	env := newTestEnv(t)

	body := decode[map[string]string](t, env.do(t, http.MethodGet, "/", "", nil))
	assert.Equal(t, "Daily Care Store API", body["message"])
	assert.Equal(t, "running", body["status"])

	body = decode[map[string]string](t, env.do(t, http.MethodGet, "/health", "", nil))
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_RutaDesconocida_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/nada", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "priya@example.com")

	resp := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "priya@example.com", me.Email)
	assert.False(t, me.IsAdmin)

	resp = env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "priya@example.com", Password: "secret123", FullName: "Otra",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Email already registered", errBody.Detail)
}

func TestAuth_LoginIncorrecto_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "priya@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "priya@example.com", Password: "mal"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect email or password", decode[dto.ErrorResponse](t, resp).Detail)
}

func TestCatalog_ProductoInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", decode[dto.ErrorResponse](t, resp).Detail)
}

func TestCatalog_ClienteNoPuedeCrearProducto(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "priya@example.com")

	resp := env.do(t, http.MethodPost, "/api/products", token, dto.CreateProductRequest{Name: "X"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCatalog_ListaPorSlugYFeed(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedCatalog(t, 5)

	list := decode[[]dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products?category=skincare", "", nil))
	require.Len(t, list, 1)
	assert.Equal(t, product.ID, list[0].ID)

	resp := env.do(t, http.MethodGet, "/api/products?min_price=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	bySlug := decode[dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products/slug/vitamin-c-serum", "", nil))
	assert.Equal(t, product.ID, bySlug.ID)

	resp = env.do(t, http.MethodGet, "/api/feeds/products.xml", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/rss+xml")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Vitamin C Serum")
}

func TestCart_SinToken_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestCart_AgregarResumenYCantidadCero(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedCatalog(t, 10)
	token := env.registerAndLogin(t, "priya@example.com")

	two := 2
	resp := env.do(t, http.MethodPost, "/api/cart", token, dto.CartItemRequest{ProductID: product.ID, Quantity: &two})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := decode[dto.CartItemResponse](t, resp)
	assert.Equal(t, 2, item.Quantity)

	resp = env.do(t, http.MethodPost, "/api/cart", token, dto.CartItemRequest{ProductID: product.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.CartItemResponse](t, resp).Quantity)

	summary := decode[dto.CartSummaryResponse](t, env.do(t, http.MethodGet, "/api/cart/summary", token, nil))
	assert.Equal(t, 3, summary.Count)
	assert.True(t, decimal.RequireFromString("300").Equal(summary.Total))

	resp = env.do(t, http.MethodPut, "/api/cart/"+itoa(item.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/cart/"+itoa(item.ID)+"?quantity=0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Item removed from cart", decode[dto.MessageResponse](t, resp).Message)

	resp = env.do(t, http.MethodDelete, "/api/cart/"+itoa(item.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWishlist_Duplicado_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedCatalog(t, 1)
	token := env.registerAndLogin(t, "priya@example.com")

	resp := env.do(t, http.MethodPost, "/api/wishlist", token, dto.WishlistItemRequest{ProductID: product.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/wishlist", token, dto.WishlistItemRequest{ProductID: product.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product already in wishlist", decode[dto.ErrorResponse](t, resp).Detail)

	resp = env.do(t, http.MethodDelete, "/api/wishlist/"+itoa(product.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Removed from wishlist", decode[dto.MessageResponse](t, resp).Message)
}

func TestOrders_CheckoutCompletoConFacturaYAdmin(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedCatalog(t, 5)
	token := env.registerAndLogin(t, "priya@example.com")

	one := 1
	resp := env.do(t, http.MethodPost, "/api/cart", token, dto.CartItemRequest{ProductID: product.ID, Quantity: &one})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/orders", token, dto.CreateOrderRequest{
		Items:           []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress: map[string]any{"full_name": "Priya Sharma", "city": "Mumbai", "pincode": "400001"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.True(t, decimal.RequireFromString("236").Equal(order.TotalAmount))

	// stock descontado y carrito vacío
	got := decode[dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products/"+itoa(product.ID), "", nil))
	assert.Equal(t, 3, got.Stock)
	cart := decode[[]dto.CartItemResponse](t, env.do(t, http.MethodGet, "/api/cart", token, nil))
	assert.Empty(t, cart)

	resp = env.do(t, http.MethodGet, "/api/orders/"+itoa(order.ID)+"/invoice", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "order-"+itoa(order.ID)+".pdf")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	// otro cliente no ve el pedido
	other := env.registerAndLogin(t, "ravi@example.com")
	resp = env.do(t, http.MethodGet, "/api/orders/"+itoa(order.ID), other, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// el admin lo ve, cambia su estado y recibe la notificación
	orders := decode[[]dto.OrderResponse](t, env.do(t, http.MethodGet, "/api/admin/orders?status=pending", env.adminToken(t), nil))
	require.Len(t, orders, 1)

	resp = env.do(t, http.MethodPut, "/api/admin/orders/"+itoa(order.ID)+"/status?status=teleported", env.adminToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/admin/orders/"+itoa(order.ID)+"/status?status=delivered", env.adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	stats := decode[dto.StatsResponse](t, env.do(t, http.MethodGet, "/api/admin/stats", env.adminToken(t), nil))
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalOrders)

	notifications := decode[[]dto.NotificationResponse](t, env.do(t, http.MethodGet, "/api/admin/notifications", env.adminToken(t), nil))
	assert.NotEmpty(t, notifications)
}

func TestOrders_StockInsuficiente_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedCatalog(t, 1)
	token := env.registerAndLogin(t, "priya@example.com")

	resp := env.do(t, http.MethodPost, "/api/orders", token, dto.CreateOrderRequest{
		Items:           []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress: map[string]any{"city": "Pune"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Detail, "Insufficient stock")
}

func TestAdmin_ToggleAdminPropio_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPut, "/api/admin/users/"+itoa(env.admin.ID)+"/toggle-admin", env.adminToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot modify your own admin status", decode[dto.ErrorResponse](t, resp).Detail)
}

func TestAdmin_ClienteRecibe403(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "priya@example.com")
	resp := env.do(t, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpload_SinArchivoYSinCloudinary(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/upload/image", env.adminToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file provided", decode[dto.ErrorResponse](t, resp).Detail)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "serum.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", env.adminToken(t))
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Cloudinary not configured", decode[dto.ErrorResponse](t, resp).Detail)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
