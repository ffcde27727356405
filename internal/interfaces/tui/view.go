package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/dailycare-store/pkg/money"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

// View dibuja la pantalla actual más la barra de estado.
func (a *App) View() string {
	var body string
	switch {
	case a.loading && a.products.Items() == nil:
		body = a.spinner.View() + " Cargando catálogo..."
	case a.screen == screenCart:
		body = a.cartView()
	default:
		body = a.products.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.header(), body, a.footer())
}

func (a *App) header() string {
	user := "invitado"
	if u := a.session.User(); u != nil {
		user = u.Email
	}
	return titleStyle.Render(fmt.Sprintf("PureGlow · %s · 🛒 %d · ♥ %d", user, a.cart.Count(), a.wishlist.Count()))
}

func (a *App) cartView() string {
	lines := a.cart.Items()
	if len(lines) == 0 {
		return boxStyle.Render(mutedStyle.Render("Tu carrito está vacío"))
	}
	var b strings.Builder
	for i, l := range lines {
		row := fmt.Sprintf("%-32s x%-3d %12s", l.Product.Name, l.Quantity, money.FormatINR(l.Subtotal()))
		if i == a.cartCursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d artículos · subtotal %s · total con GST %s",
		a.cart.Count(), money.FormatINR(a.cart.Total()), money.FormatINR(money.WithGST(a.cart.Total())))
	return boxStyle.Render(b.String())
}

func (a *App) footer() string {
	help := "a agregar · w deseos · c carrito · o confirmar · q salir"
	if a.screen == screenCart {
		help = "+/- cantidad · x quitar · c catálogo · o confirmar · q salir"
	}
	status := a.statusMsg
	if a.loading && a.products.Items() != nil {
		status = a.spinner.View() + " " + status
	}
	out := mutedStyle.Render(help)
	if a.err != nil {
		out = errorStyle.Render("Error: "+a.err.Error()) + "\n" + out
	} else if status != "" {
		out = status + "\n" + out
	}
	return out
}
