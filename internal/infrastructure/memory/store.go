// Package memory implementa los puertos de repositorio en memoria.
// Lo usan los tests de casos de uso y de handlers; no persiste nada.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu         sync.Mutex
	seq        int64
	users      map[int64]*entity.User
	categories map[int64]*entity.Category
	products   map[int64]*entity.Product
	cart       map[int64]*entity.CartItem
	wishlist   map[int64]*entity.WishlistItem
	orders     map[int64]*entity.Order
	otps       map[int64]*entity.OTP
	resets     map[int64]*entity.PasswordReset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      map[int64]*entity.User{},
		categories: map[int64]*entity.Category{},
		products:   map[int64]*entity.Product{},
		cart:       map[int64]*entity.CartItem{},
		wishlist:   map[int64]*entity.WishlistItem{},
		orders:     map[int64]*entity.Order{},
		otps:       map[int64]*entity.OTP{},
		resets:     map[int64]*entity.PasswordReset{},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

// Cart repositorio del carrito.
func (s *Store) Cart() *CartRepository { return &CartRepository{s: s} }

// Wishlist repositorio de la lista de deseos.
func (s *Store) Wishlist() *WishlistRepository { return &WishlistRepository{s: s} }

// Orders repositorio de pedidos.
func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }

// OTPs repositorio de códigos OTP.
func (s *Store) OTPs() *OTPRepository { return &OTPRepository{s: s} }

// Resets repositorio de tokens de recuperación.
func (s *Store) Resets() *PasswordResetRepository { return &PasswordResetRepository{s: s} }

// Stats consultas agregadas.
func (s *Store) Stats() *StatsRepository { return &StatsRepository{s: s} }

// RunOrder ejecuta fn con los repositorios del almacén. Si fn falla se restauran
// pedidos, productos y carrito al estado previo (los repos guardan copias, nunca mutan en sitio).
func (s *Store) RunOrder(_ context.Context, fn func(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	cart repository.CartRepository,
) error) error {
	s.mu.Lock()
	orders, products, cart := cloneMap(s.orders), cloneMap(s.products), cloneMap(s.cart)
	s.mu.Unlock()

	if err := fn(s.Orders(), s.Products(), s.Cart()); err != nil {
		s.mu.Lock()
		s.orders, s.products, s.cart = orders, products, cart
		s.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var (
	_ repository.UserRepository          = (*UserRepository)(nil)
	_ repository.CategoryRepository      = (*CategoryRepository)(nil)
	_ repository.ProductRepository       = (*ProductRepository)(nil)
	_ repository.CartRepository          = (*CartRepository)(nil)
	_ repository.WishlistRepository      = (*WishlistRepository)(nil)
	_ repository.OrderRepository         = (*OrderRepository)(nil)
	_ repository.OTPRepository           = (*OTPRepository)(nil)
	_ repository.PasswordResetRepository = (*PasswordResetRepository)(nil)
	_ repository.StatsRepository         = (*StatsRepository)(nil)
)
