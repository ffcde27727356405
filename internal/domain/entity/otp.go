package entity

import "time"

// OTP código de acceso de un solo uso enviado por SMS.
type OTP struct {
	ID        int64
	Phone     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
}

// Expired indica si el código venció respecto a now.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
