package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

// OrderRepository implementación en memoria de repository.OrderRepository.
type OrderRepository struct{ s *Store }

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.nextID()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	for i := range o.Items {
		o.Items[i].ID = r.s.nextID()
		o.Items[i].OrderID = o.ID
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.orders[id]; ok {
		return r.s.withProducts(cloneOrder(o)), nil
	}
	return nil, nil
}

func (r *OrderRepository) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Order, 0)
	for _, o := range r.s.orders {
		if f.UserID != nil && o.UserID != *f.UserID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, r.s.withProducts(cloneOrder(o)))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id int64, status, paymentStatus string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	cp := cloneOrder(o)
	cp.Status = status
	cp.PaymentStatus = paymentStatus
	now := time.Now()
	cp.UpdatedAt = &now
	r.s.orders[id] = cp
	return nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	for i := range cp.Items {
		cp.Items[i].Product = nil
	}
	return &cp
}

func (s *Store) withProducts(o *entity.Order) *entity.Order {
	for i := range o.Items {
		if p, ok := s.products[o.Items[i].ProductID]; ok {
			o.Items[i].Product = s.cloneProduct(p)
		}
	}
	return o
}

// OTPRepository implementación en memoria de repository.OTPRepository.
type OTPRepository struct{ s *Store }

func (r *OTPRepository) DeleteByPhone(_ context.Context, phone string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, o := range r.s.otps {
		if o.Phone == phone {
			delete(r.s.otps, id)
		}
	}
	return nil
}

func (r *OTPRepository) Create(_ context.Context, otp *entity.OTP) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	otp.ID = r.s.nextID()
	cp := *otp
	r.s.otps[otp.ID] = &cp
	return nil
}

func (r *OTPRepository) FindUnused(_ context.Context, phone, code string) (*entity.OTP, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.otps {
		if o.Phone == phone && o.Code == code && !o.IsUsed {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *OTPRepository) MarkUsed(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.otps[id]; ok {
		cp := *o
		cp.IsUsed = true
		r.s.otps[id] = &cp
	}
	return nil
}

// PasswordResetRepository implementación en memoria de repository.PasswordResetRepository.
type PasswordResetRepository struct{ s *Store }

func (r *PasswordResetRepository) DeleteByUser(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, pr := range r.s.resets {
		if pr.UserID == userID {
			delete(r.s.resets, id)
		}
	}
	return nil
}

func (r *PasswordResetRepository) Create(_ context.Context, reset *entity.PasswordReset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reset.ID = r.s.nextID()
	cp := *reset
	r.s.resets[reset.ID] = &cp
	return nil
}

func (r *PasswordResetRepository) GetByToken(_ context.Context, token string) (*entity.PasswordReset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, pr := range r.s.resets {
		if pr.Token == token {
			cp := *pr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *PasswordResetRepository) MarkUsed(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	pr, ok := r.s.resets[id]
	if !ok || pr.IsUsed {
		return domain.ErrInvalidResetToken
	}
	cp := *pr
	cp.IsUsed = true
	r.s.resets[id] = &cp
	return nil
}

// StatsRepository implementación en memoria de repository.StatsRepository.
type StatsRepository struct{ s *Store }

func (r *StatsRepository) CountUsers(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r *StatsRepository) CountProducts(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

func (r *StatsRepository) CountOrders(_ context.Context, status string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, o := range r.s.orders {
		if status == "" || o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *StatsRepository) Revenue(_ context.Context, paymentStatus string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, o := range r.s.orders {
		if o.PaymentStatus == paymentStatus {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}
