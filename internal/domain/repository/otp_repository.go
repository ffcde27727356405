package repository

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// OTPRepository persistencia de códigos OTP.
type OTPRepository interface {
	DeleteByPhone(ctx context.Context, phone string) error
	Create(ctx context.Context, otp *entity.OTP) error
	// FindUnused busca un código no usado para el teléfono; (nil, nil) si no existe.
	FindUnused(ctx context.Context, phone, code string) (*entity.OTP, error)
	MarkUsed(ctx context.Context, id int64) error
}
