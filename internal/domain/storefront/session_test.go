package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m memKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memKV) Delete(_ context.Context, key string) error {
	if _, ok := m[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m, key)
	return nil
}

func TestSession_LoginPersisteYRestore(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	s := NewSession(kv)

	require.NoError(t, s.Login(ctx, User{ID: 3, Email: "ana@example.com", FullName: "Ana"}, "tok"))
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "tok", kv[KeyToken])
	assert.Contains(t, kv[KeyUser], `"email":"ana@example.com"`)

	restored := NewSession(kv)
	require.NoError(t, restored.Restore(ctx))
	require.NotNil(t, restored.User())
	assert.Equal(t, int64(3), restored.User().ID)
	assert.Equal(t, "tok", restored.Token())
}

func TestSession_AdminMarcaAdminAuth(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	s := NewSession(kv)

	require.NoError(t, s.Login(ctx, User{ID: 1, Email: "admin@example.com", IsAdmin: true}, "t"))
	assert.Equal(t, "true", kv[KeyAdminAuth])
	assert.True(t, s.IsAdmin())
}

func TestSession_LogoutBorraTodo(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	s := NewSession(kv)
	require.NoError(t, s.Login(ctx, User{ID: 1, IsAdmin: true}, "t"))

	require.NoError(t, s.Logout(ctx))
	assert.Empty(t, kv)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	require.NoError(t, s.Logout(ctx), "logout sin sesión no falla")
}

func TestSession_RestoreUsuarioCorrupto(t *testing.T) {
	kv := memKV{KeyToken: "t", KeyUser: "{no-json"}
	s := NewSession(kv)
	require.NoError(t, s.Restore(context.Background()))
	assert.Nil(t, s.User())
	assert.True(t, s.IsAuthenticated())
}

func TestSession_ReloginComoClienteQuitaAdminAuth(t *testing.T) {
	ctx := context.Background()
	kv := memKV{}
	s := NewSession(kv)
	require.NoError(t, s.Login(ctx, User{ID: 1, Email: "admin@example.com", IsAdmin: true}, "t-admin"))

	require.NoError(t, s.Login(ctx, User{ID: 2, Email: "cliente@example.com"}, "t-cliente"))
	assert.False(t, s.IsAdmin())
	assert.NotContains(t, kv, KeyAdminAuth)

	restored := NewSession(kv)
	require.NoError(t, restored.Restore(ctx))
	require.NotNil(t, restored.User())
	assert.Equal(t, "cliente@example.com", restored.User().Email)
	assert.Equal(t, "t-cliente", restored.Token())
	assert.False(t, restored.IsAdmin())
}
