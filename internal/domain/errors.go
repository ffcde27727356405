package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrAlreadyInWishlist  = errors.New("el producto ya está en la lista de deseos")
	ErrInvalidOTP         = errors.New("OTP inválido")
	ErrOTPExpired         = errors.New("OTP expirado")
	ErrInvalidResetToken  = errors.New("token de recuperación inválido o expirado")
	ErrSelfModification   = errors.New("no se puede modificar el propio rol de administrador")
	ErrNotConfigured      = errors.New("servicio externo no configurado")
	ErrUpstream           = errors.New("falló el servicio externo")
)

// DetailedError acompaña un error de dominio con el mensaje que ve el cliente.
// errors.Is sigue funcionando contra el sentinel envuelto.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string { return e.Detail }

func (e *DetailedError) Unwrap() error { return e.Err }

// WithDetail envuelve err con un mensaje para el cliente.
func WithDetail(err error, format string, args ...any) error {
	return &DetailedError{Err: err, Detail: fmt.Sprintf(format, args...)}
}
