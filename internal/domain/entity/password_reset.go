package entity

import "time"

// PasswordReset token de un solo uso para restablecer la contraseña.
type PasswordReset struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
}

// Usable indica si el token puede canjearse en now.
func (r *PasswordReset) Usable(now time.Time) bool {
	return !r.IsUsed && !now.After(r.ExpiresAt)
}
