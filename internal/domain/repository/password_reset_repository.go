package repository

import (
	"context"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// PasswordResetRepository persistencia de tokens de recuperación de contraseña.
type PasswordResetRepository interface {
	DeleteByUser(ctx context.Context, userID int64) error
	Create(ctx context.Context, reset *entity.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error)
	// MarkUsed retorna domain.ErrInvalidResetToken si el token ya fue consumido.
	MarkUsed(ctx context.Context, id int64) error
}
