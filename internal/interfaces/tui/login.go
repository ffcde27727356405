package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginForm formulario de email y contraseña para `storefront login`.
type LoginForm struct {
	inputs    []textinput.Model
	focus     int
	submitted bool
	cancelled bool
}

// NewLoginForm crea el formulario; email puede venir precargado.
func NewLoginForm(email string) *LoginForm {
	emailIn := textinput.New()
	emailIn.Placeholder = "email"
	emailIn.Prompt = "Email:      "
	emailIn.SetValue(email)

	passIn := textinput.New()
	passIn.Placeholder = "contraseña"
	passIn.Prompt = "Contraseña: "
	passIn.EchoMode = textinput.EchoPassword
	passIn.EchoCharacter = '•'

	f := &LoginForm{inputs: []textinput.Model{emailIn, passIn}}
	if email != "" {
		f.focus = 1
	}
	f.inputs[f.focus].Focus()
	return f
}

// Credentials valores ingresados.
func (f *LoginForm) Credentials() (email, password string) {
	return strings.TrimSpace(f.inputs[0].Value()), f.inputs[1].Value()
}

// Submitted el usuario confirmó con enter en el último campo.
func (f *LoginForm) Submitted() bool { return f.submitted }

// Cancelled el usuario salió con esc o ctrl+c.
func (f *LoginForm) Cancelled() bool { return f.cancelled }

func (f *LoginForm) Init() tea.Cmd { return textinput.Blink }

func (f *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			f.cancelled = true
			return f, tea.Quit
		case "tab", "shift+tab", "up", "down":
			f.setFocus(1 - f.focus)
			return f, nil
		case "enter":
			if f.focus == 0 {
				f.setFocus(1)
				return f, nil
			}
			f.submitted = true
			return f, tea.Quit
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *LoginForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *LoginForm) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("PureGlow · iniciar sesión"),
		f.inputs[0].View(),
		f.inputs[1].View(),
		mutedStyle.Render("enter confirmar · tab cambiar campo · esc cancelar"),
	)
}
