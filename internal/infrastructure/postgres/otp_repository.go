package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo códigos de acceso por SMS.
type OTPRepo struct {
	q Querier
}

func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

func (r *OTPRepo) DeleteByPhone(ctx context.Context, phone string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM otps WHERE phone = $1`, phone); err != nil {
		return fmt.Errorf("delete otps: %w", err)
	}
	return nil
}

func (r *OTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO otps (phone, otp_code, created_at, expires_at, is_used) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		otp.Phone, otp.Code, otp.CreatedAt, otp.ExpiresAt, otp.IsUsed,
	).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

func (r *OTPRepo) FindUnused(ctx context.Context, phone, code string) (*entity.OTP, error) {
	var o entity.OTP
	err := r.q.QueryRow(ctx, `
		SELECT id, phone, otp_code, created_at, expires_at, is_used
		FROM otps WHERE phone = $1 AND otp_code = $2 AND is_used = FALSE
		ORDER BY created_at DESC LIMIT 1`, phone, code,
	).Scan(&o.ID, &o.Phone, &o.Code, &o.CreatedAt, &o.ExpiresAt, &o.IsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find otp: %w", err)
	}
	return &o, nil
}

func (r *OTPRepo) MarkUsed(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `UPDATE otps SET is_used = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark otp used: %w", err)
	}
	return nil
}
