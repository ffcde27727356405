package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeText(f *LoginForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginForm_CapturaCredenciales(t *testing.T) {
	f := NewLoginForm("")
	typeText(f, "priya@example.com")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(f, "secret123")
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, f.Submitted())
	assert.NotNil(t, cmd)
	email, password := f.Credentials()
	assert.Equal(t, "priya@example.com", email)
	assert.Equal(t, "secret123", password)
	assert.NotContains(t, f.View(), "secret123")
}

func TestLoginForm_EmailPrecargadoEnfocaPassword(t *testing.T) {
	f := NewLoginForm("ravi@example.com")
	typeText(f, "pw")
	email, password := f.Credentials()
	assert.Equal(t, "ravi@example.com", email)
	assert.Equal(t, "pw", password)
}

func TestLoginForm_EscCancela(t *testing.T) {
	f := NewLoginForm("")
	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, f.Cancelled())
	assert.False(t, f.Submitted())
}
