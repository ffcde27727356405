package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
)

func boolPtr(b bool) *bool { return &b }

func TestUserList_Paginacion(t *testing.T) {
	store := memory.NewStore()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		seedUser(t, store, email, false)
	}
	uc := NewUserUseCase(store.Users())

	page, err := uc.List(context.Background(), dto.PageRequest{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@x.com", page[0].Email)

	all, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserToggleAdmin_PropiaCuentaRechazada(t *testing.T) {
	store := memory.NewStore()
	admin := seedUser(t, store, "admin@x.com", true)
	other := seedUser(t, store, "ana@x.com", false)
	uc := NewUserUseCase(store.Users())
	ctx := context.Background()

	_, err := uc.ToggleAdmin(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfModification)

	msg, err := uc.ToggleAdmin(ctx, admin.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "User admin status updated to true", msg.Message)

	got, err := uc.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
}

func TestUserUpdate_Parcial(t *testing.T) {
	store := memory.NewStore()
	admin := seedUser(t, store, "admin@x.com", true)
	other := seedUser(t, store, "ana@x.com", false)
	uc := NewUserUseCase(store.Users())
	ctx := context.Background()

	got, err := uc.Update(ctx, admin.ID, other.ID, dto.AdminUserUpdateRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.False(t, got.IsAdmin)

	// Quitarse el propio rol no se permite; dejarlo igual sí.
	_, err = uc.Update(ctx, admin.ID, admin.ID, dto.AdminUserUpdateRequest{IsAdmin: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrSelfModification)
	_, err = uc.Update(ctx, admin.ID, admin.ID, dto.AdminUserUpdateRequest{IsAdmin: boolPtr(true)})
	require.NoError(t, err)
}

func TestUserToggleActive_UsuarioInexistente(t *testing.T) {
	uc := NewUserUseCase(memory.NewStore().Users())

	_, err := uc.ToggleActive(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
