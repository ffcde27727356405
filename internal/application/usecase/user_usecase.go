package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
)

const (
	defaultUserLimit = 100
	maxUserLimit     = 500
)

// UserUseCase administración de cuentas (panel de administración).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación skip/limit.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.Normalize(defaultUserLimit, maxUserLimit)
	list, err := uc.repo.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// Update cambia is_admin / is_active. Un administrador no puede quitarse su propio rol.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id int64, in dto.AdminUserUpdateRequest) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IsAdmin != nil {
		if u.ID == actorID && *in.IsAdmin != u.IsAdmin {
			return nil, domain.ErrSelfModification
		}
		u.IsAdmin = *in.IsAdmin
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// ToggleAdmin invierte is_admin de otro usuario.
func (uc *UserUseCase) ToggleAdmin(ctx context.Context, actorID, id int64) (*dto.MessageResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.ID == actorID {
		return nil, domain.ErrSelfModification
	}
	u.IsAdmin = !u.IsAdmin
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("User admin status updated to %t", u.IsAdmin)}, nil
}

// ToggleActive invierte is_active.
func (uc *UserUseCase) ToggleActive(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = !u.IsActive
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("User active status updated to %t", u.IsActive)}, nil
}

func (uc *UserUseCase) load(ctx context.Context, id int64) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}
