package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Claves de almacenamiento local de la sesión.
const (
	KeyUser      = "user"
	KeyToken     = "token"
	KeyAdminAuth = "adminAuth"
)

// ErrKeyNotFound lo devuelve un KVStore cuando la clave no existe.
var ErrKeyNotFound = errors.New("storefront: clave no encontrada")

// KVStore almacenamiento clave/valor local donde persiste la sesión.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// User datos del usuario autenticado tal como los devuelve /api/auth/me.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// Session estado de autenticación persistido en un KVStore.
type Session struct {
	store     KVStore
	user      *User
	token     string
	adminAuth bool
}

// NewSession construye una sesión vacía sobre store. Llamar Restore para leer lo persistido.
func NewSession(store KVStore) *Session {
	return &Session{store: store}
}

// Restore carga usuario, token y adminAuth desde el almacenamiento.
// Un usuario ilegible se trata como sesión cerrada.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.get(ctx, KeyToken)
	if err != nil {
		return err
	}
	raw, err := s.get(ctx, KeyUser)
	if err != nil {
		return err
	}
	admin, err := s.get(ctx, KeyAdminAuth)
	if err != nil {
		return err
	}
	s.token = token
	s.adminAuth = admin == "true"
	s.user = nil
	if raw != "" {
		var u User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			s.user = &u
		}
	}
	return nil
}

// Login guarda usuario y token. adminAuth queda marcado solo si el usuario es administrador,
// también cuando reemplaza una sesión anterior sin Logout.
func (s *Session) Login(ctx context.Context, user User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("sesión: serializar usuario: %w", err)
	}
	if err := s.store.Set(ctx, KeyUser, string(raw)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	if user.IsAdmin {
		if err := s.store.Set(ctx, KeyAdminAuth, "true"); err != nil {
			return err
		}
	} else if err := s.store.Delete(ctx, KeyAdminAuth); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	s.user = &user
	s.token = token
	s.adminAuth = user.IsAdmin
	return nil
}

// Logout borra usuario, token y adminAuth.
func (s *Session) Logout(ctx context.Context) error {
	for _, k := range []string{KeyUser, KeyToken, KeyAdminAuth} {
		if err := s.store.Delete(ctx, k); err != nil && !errors.Is(err, ErrKeyNotFound) {
			return err
		}
	}
	s.user = nil
	s.token = ""
	s.adminAuth = false
	return nil
}

// User usuario actual (nil si no hay sesión).
func (s *Session) User() *User { return s.user }

// Token bearer token actual.
func (s *Session) Token() string { return s.token }

// IsAuthenticated hay token guardado.
func (s *Session) IsAuthenticated() bool { return s.token != "" }

// IsAdmin la sesión pasó por el login de administración.
func (s *Session) IsAdmin() bool { return s.adminAuth }

func (s *Session) get(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	return v, err
}
