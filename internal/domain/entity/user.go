package entity

import "time"

// Roles que viajan en el token JWT.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un cliente de la tienda o un administrador.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string // vacío = sin teléfono
	Address      string
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
}

// Role devuelve el rol que se firma en el token.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}
