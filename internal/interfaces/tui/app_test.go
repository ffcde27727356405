package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/localstore"
)

type fakeAPI struct {
	products []dto.ProductResponse
	listErr  error
	placed   []storefront.OrderLine
	address  map[string]any
	orderErr error
}

func (f *fakeAPI) ListProducts(_ context.Context, _ dto.ProductListQuery) ([]dto.ProductResponse, error) {
	return f.products, f.listErr
}

func (f *fakeAPI) PlaceOrder(_ context.Context, lines []storefront.OrderLine, address map[string]any, _ string) (*dto.OrderResponse, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	f.placed = lines
	f.address = address
	return &dto.OrderResponse{ID: 42, TotalAmount: decimal.RequireFromString("118")}, nil
}

func newSession(t *testing.T, loggedIn bool) *storefront.Session {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	s := storefront.NewSession(store)
	if loggedIn {
		require.NoError(t, s.Login(context.Background(), storefront.User{ID: 1, Email: "priya@example.com", FullName: "Priya"}, "tok"))
	}
	return s
}

func catalog() []dto.ProductResponse {
	return []dto.ProductResponse{
		{ID: 1, Name: "Rose Serum", Slug: "rose-serum", Price: decimal.RequireFromString("100"), Stock: 5},
		{ID: 2, Name: "Neem Scrub", Slug: "neem-scrub", Price: decimal.RequireFromString("50"), Stock: 2},
	}
}

// loaded devuelve una App con el catálogo ya cargado.
func loaded(t *testing.T, api *fakeAPI, loggedIn bool) *App {
	t.Helper()
	app := NewApp(api, newSession(t, loggedIn), Options{ShippingAddress: map[string]any{"city": "Mumbai"}})
	msg := app.loadProducts()()
	app.Update(msg)
	return app
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
	return cmd
}

func TestApp_CargaCatalogo(t *testing.T) {
	app := loaded(t, &fakeAPI{products: catalog()}, false)

	assert.False(t, app.loading)
	assert.Len(t, app.products.Items(), 2)
	assert.Contains(t, app.View(), "Rose Serum")
}

func TestApp_ErrorAlCargarSeMuestra(t *testing.T) {
	app := loaded(t, &fakeAPI{listErr: errors.New("api caída")}, false)

	assert.Contains(t, app.View(), "api caída")
}

func TestApp_AgregarYDeseos(t *testing.T) {
	app := loaded(t, &fakeAPI{products: catalog()}, false)

	press(app, "a", "a", "w")

	assert.Equal(t, 2, app.Cart().Quantity(1))
	assert.Equal(t, 1, app.Cart().Len())
	assert.True(t, app.Wishlist().Contains(1))
	item := app.products.Items()[0].(productItem)
	assert.True(t, item.wished)
	assert.Equal(t, 2, item.inCart)

	press(app, "w")
	assert.False(t, app.Wishlist().Contains(1))
}

func TestApp_VistaCarritoCantidadesYQuitar(t *testing.T) {
	app := loaded(t, &fakeAPI{products: catalog()}, false)
	press(app, "a", "c")
	require.Equal(t, screenCart, app.screen)

	press(app, "+", "+")
	assert.Equal(t, 3, app.Cart().Count())
	assert.Contains(t, app.View(), "₹300.00")

	press(app, "-", "-", "-")
	assert.Zero(t, app.Cart().Len(), "cantidad cero elimina la línea")

	press(app, "c")
	press(app, "a", "c", "x")
	assert.Zero(t, app.Cart().Len())
}

func TestApp_CheckoutSinSesionNoEnvia(t *testing.T) {
	api := &fakeAPI{products: catalog()}
	app := loaded(t, api, false)
	press(app, "a")

	cmd := press(app, "o")

	assert.Nil(t, cmd)
	assert.Nil(t, api.placed)
	assert.Contains(t, app.statusMsg, "storefront login")
}

func TestApp_CheckoutEnviaLineasYVaciaCarrito(t *testing.T) {
	api := &fakeAPI{products: catalog()}
	app := loaded(t, api, true)
	press(app, "a", "a")

	require.NotNil(t, press(app, "o"))
	app.Update(app.placeOrder()())

	require.Len(t, api.placed, 1)
	assert.Equal(t, storefront.OrderLine{ProductID: 1, Quantity: 2}, api.placed[0])
	assert.Equal(t, "Mumbai", api.address["city"])
	assert.Equal(t, "Priya", api.address["full_name"])
	assert.Zero(t, app.Cart().Len())
	assert.Contains(t, app.statusMsg, "Pedido #42")
}

func TestApp_CheckoutFallidoConservaCarrito(t *testing.T) {
	api := &fakeAPI{products: catalog(), orderErr: errors.New("Insufficient stock for Rose Serum")}
	app := loaded(t, api, true)
	press(app, "a")

	press(app, "o")
	app.Update(app.placeOrder()())

	assert.Equal(t, 1, app.Cart().Len())
	assert.Contains(t, app.View(), "Insufficient stock")
}

func TestApp_CheckoutCarritoVacio(t *testing.T) {
	app := loaded(t, &fakeAPI{products: catalog()}, true)
	assert.Nil(t, press(app, "o"))
	assert.Equal(t, "El carrito está vacío", app.statusMsg)
}

func TestApp_QSale(t *testing.T) {
	app := loaded(t, &fakeAPI{products: catalog()}, false)
	cmd := press(app, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
