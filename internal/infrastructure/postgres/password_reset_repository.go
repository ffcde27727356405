package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo tokens de recuperación de contraseña.
type PasswordResetRepo struct {
	q Querier
}

func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// DeleteByUser invalida los tokens previos del usuario.
func (r *PasswordResetRepo) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM password_resets WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete password resets: %w", err)
	}
	return nil
}

func (r *PasswordResetRepo) Create(ctx context.Context, pr *entity.PasswordReset) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO password_resets (user_id, token, created_at, expires_at, is_used)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		pr.UserID, pr.Token, pr.CreatedAt, pr.ExpiresAt, pr.IsUsed,
	).Scan(&pr.ID)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

func (r *PasswordResetRepo) GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, token, created_at, expires_at, is_used
		FROM password_resets WHERE token = $1`, token,
	).Scan(&pr.ID, &pr.UserID, &pr.Token, &pr.CreatedAt, &pr.ExpiresAt, &pr.IsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get password reset: %w", err)
	}
	return &pr, nil
}

// MarkUsed consume el token una sola vez; si otro canje ganó, retorna domain.ErrInvalidResetToken.
func (r *PasswordResetRepo) MarkUsed(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE password_resets SET is_used = TRUE WHERE id = $1 AND NOT is_used`, id)
	if err != nil {
		return fmt.Errorf("mark password reset used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidResetToken
	}
	return nil
}
