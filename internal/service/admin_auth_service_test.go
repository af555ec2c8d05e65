package service

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/session"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminAuth(store session.Store, ttlMinutes int) *AdminAuthServiceImpl {
	return NewAdminAuthService(store,
		config.AdminConfig{Username: "admin", Password: "admin123"},
		config.SessionConfig{TTLMinutes: ttlMinutes},
	).(*AdminAuthServiceImpl)
}

func TestAdminAuth_LoginAuthenticateLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	svc := newAdminAuth(store, 60)

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrAdminCredential)
	assertKind(t, KindInvalidCredentials, err)
	_, err = svc.Login(ctx, "root", "admin123")
	assert.ErrorIs(t, err, ErrAdminCredential)
	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrAdminCredential)
	assert.Equal(t, 0, store.Len())

	sess, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, consts.AdminRoleSuper, sess.Role)

	got, err := svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = svc.Authenticate(ctx, "forged")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	require.NoError(t, svc.Logout(ctx, sess.Token))
	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminAuth_ExpiredSessionRejected(t *testing.T) {
	ctx := context.Background()
	svc := newAdminAuth(session.NewMemoryStore(), 1)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	sess, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminAuth_EmptyConfiguredAdminRejected(t *testing.T) {
	svc := NewAdminAuthService(session.NewMemoryStore(), config.AdminConfig{}, config.SessionConfig{})

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrAdminCredential)
}
