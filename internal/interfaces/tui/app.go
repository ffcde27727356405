// Package tui es el storefront de terminal: catálogo, carrito y lista de deseos sobre la API.
//
// Sigue la arquitectura de bubbletea: el estado vive en App, Update lo modifica
// a partir de mensajes (teclas o respuestas de la API) y View lo dibuja.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain/storefront"
	"github.com/jhoicas/dailycare-store/pkg/money"
)

const (
	defaultPaymentMethod = "cod"
	requestTimeout       = 15 * time.Second
)

// API operaciones de la API que usa el storefront.
type API interface {
	ListProducts(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error)
	PlaceOrder(ctx context.Context, lines []storefront.OrderLine, address map[string]any, paymentMethod string) (*dto.OrderResponse, error)
}

type screen int

const (
	screenProducts screen = iota
	screenCart
)

type productsLoadedMsg struct {
	products []dto.ProductResponse
	err      error
}

type orderPlacedMsg struct {
	order *dto.OrderResponse
	err   error
}

// productItem implementa list.Item.
type productItem struct {
	product storefront.Product
	wished  bool
	inCart  int
}

func (i productItem) Title() string {
	if i.wished {
		return "♥ " + i.product.Name
	}
	return i.product.Name
}

func (i productItem) Description() string {
	desc := fmt.Sprintf("%s · stock %d", money.FormatINR(i.product.Price), i.product.Stock)
	if i.inCart > 0 {
		desc += fmt.Sprintf(" · en carrito: %d", i.inCart)
	}
	return desc
}

func (i productItem) FilterValue() string { return i.product.Name }

// Options ajustes del storefront.
type Options struct {
	Category        string         // slug para filtrar el catálogo
	ShippingAddress map[string]any // dirección de envío del checkout
}

// App modelo principal del storefront.
type App struct {
	api     API
	session *storefront.Session
	opts    Options

	cart     *storefront.Cart
	wishlist *storefront.Wishlist

	screen     screen
	products   list.Model
	spinner    spinner.Model
	loading    bool
	cartCursor int

	statusMsg string
	err       error
	lastOrder *dto.OrderResponse

	width  int
	height int
}

// NewApp construye el modelo. session puede no tener token: el checkout lo exige.
func NewApp(api API, session *storefront.Session, opts Options) *App {
	products := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	products.Title = "PureGlow"
	products.SetShowStatusBar(false)
	products.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return &App{
		api:      api,
		session:  session,
		opts:     opts,
		cart:     &storefront.Cart{},
		wishlist: &storefront.Wishlist{},
		products: products,
		spinner:  sp,
		loading:  true,
	}
}

// Cart carrito local (lo usa cmd/storefront al salir y los tests).
func (a *App) Cart() *storefront.Cart { return a.cart }

// Wishlist lista de deseos local.
func (a *App) Wishlist() *storefront.Wishlist { return a.wishlist }

// Init carga el catálogo.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadProducts())
}

func (a *App) loadProducts() tea.Cmd {
	api, category := a.api, a.opts.Category
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		products, err := api.ListProducts(ctx, dto.ProductListQuery{Category: category})
		return productsLoadedMsg{products: products, err: err}
	}
}

func (a *App) placeOrder() tea.Cmd {
	api := a.api
	lines := a.cart.OrderLines()
	address := a.shippingAddress()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		order, err := api.PlaceOrder(ctx, lines, address, defaultPaymentMethod)
		return orderPlacedMsg{order: order, err: err}
	}
}

// shippingAddress dirección configurada completada con los datos del usuario de la sesión.
func (a *App) shippingAddress() map[string]any {
	addr := make(map[string]any, len(a.opts.ShippingAddress)+2)
	for k, v := range a.opts.ShippingAddress {
		addr[k] = v
	}
	if u := a.session.User(); u != nil {
		if _, ok := addr["full_name"]; !ok {
			addr["full_name"] = u.FullName
		}
		if _, ok := addr["email"]; !ok {
			addr["email"] = u.Email
		}
		if _, ok := addr["phone"]; !ok && u.Phone != "" {
			addr["phone"] = u.Phone
		}
	}
	return addr
}

// Update procesa teclas y respuestas de la API.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.products.SetSize(msg.Width, max(msg.Height-4, 5))
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case productsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		items := make([]list.Item, 0, len(msg.products))
		for _, p := range msg.products {
			items = append(items, productItem{product: p.ToStorefrontProduct()})
		}
		cmd := a.products.SetItems(items)
		a.refreshItems()
		a.statusMsg = fmt.Sprintf("%d productos", len(items))
		return a, cmd

	case orderPlacedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			a.statusMsg = ""
			return a, nil
		}
		a.lastOrder = msg.order
		a.cart.Clear()
		a.cartCursor = 0
		a.refreshItems()
		a.err = nil
		a.statusMsg = fmt.Sprintf("Pedido #%d confirmado · total %s", msg.order.ID, money.FormatINR(msg.order.TotalAmount))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == screenProducts && a.products.FilterState() == list.Filtering {
			break
		}
		if cmd, handled := a.handleKey(msg.String()); handled {
			return a, cmd
		}
	}

	if a.screen == screenProducts {
		var cmd tea.Cmd
		a.products, cmd = a.products.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey atajos propios; devuelve handled=false para delegar en la lista.
func (a *App) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "q":
		return tea.Quit, true
	case "c":
		if a.screen == screenCart {
			a.screen = screenProducts
		} else {
			a.screen = screenCart
			a.cartCursor = min(a.cartCursor, max(a.cart.Len()-1, 0))
		}
		return nil, true
	case "o":
		return a.checkout(), true
	}

	if a.screen == screenProducts {
		item, ok := a.products.SelectedItem().(productItem)
		switch key {
		case "a":
			if ok {
				a.cart.Add(item.product)
				a.statusMsg = fmt.Sprintf("%s agregado al carrito", item.product.Name)
				a.refreshItems()
			}
			return nil, true
		case "w":
			if ok {
				if a.wishlist.Toggle(item.product) {
					a.statusMsg = fmt.Sprintf("%s guardado en la lista de deseos", item.product.Name)
				} else {
					a.statusMsg = fmt.Sprintf("%s quitado de la lista de deseos", item.product.Name)
				}
				a.refreshItems()
			}
			return nil, true
		}
		return nil, false
	}

	lines := a.cart.Items()
	switch key {
	case "up", "k":
		if a.cartCursor > 0 {
			a.cartCursor--
		}
	case "down", "j":
		if a.cartCursor < len(lines)-1 {
			a.cartCursor++
		}
	case "+", "=":
		if len(lines) > 0 {
			l := lines[a.cartCursor]
			a.cart.UpdateQuantity(l.Product.ID, l.Quantity+1)
		}
	case "-":
		if len(lines) > 0 {
			l := lines[a.cartCursor]
			a.cart.UpdateQuantity(l.Product.ID, l.Quantity-1)
		}
	case "x":
		if len(lines) > 0 {
			a.cart.Remove(lines[a.cartCursor].Product.ID)
		}
	default:
		return nil, false
	}
	a.cartCursor = min(a.cartCursor, max(a.cart.Len()-1, 0))
	a.refreshItems()
	return nil, true
}

func (a *App) checkout() tea.Cmd {
	switch {
	case a.cart.Len() == 0:
		a.statusMsg = "El carrito está vacío"
		return nil
	case !a.session.IsAuthenticated():
		a.statusMsg = "Inicia sesión con `storefront login` para confirmar el pedido"
		return nil
	case a.loading:
		return nil
	}
	a.loading = true
	a.err = nil
	a.statusMsg = "Confirmando pedido..."
	return tea.Batch(a.spinner.Tick, a.placeOrder())
}

// refreshItems sincroniza las marcas de carrito y deseos en la lista.
func (a *App) refreshItems() {
	items := a.products.Items()
	for i, it := range items {
		pi, ok := it.(productItem)
		if !ok {
			continue
		}
		pi.wished = a.wishlist.Contains(pi.product.ID)
		pi.inCart = a.cart.Quantity(pi.product.ID)
		a.products.SetItem(i, pi)
	}
}
