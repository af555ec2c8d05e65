package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := &Session{Token: NewToken(), Username: "admin", Role: "super_admin", LoginAt: time.Now()}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "super_admin", got.Role)

	require.NoError(t, store.Delete(ctx, sess.Token))
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// 重复删除不报错
	assert.NoError(t, store.Delete(ctx, sess.Token))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	sess := &Session{Token: "t1", Username: "admin", LoginAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	_, err := store.Get(ctx, "t1")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = store.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, store.Sweep(now))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("tok-%d", i)
			_ = store.Save(ctx, &Session{Token: token, Username: "admin"})
			_, _ = store.Get(ctx, token)
			if i%2 == 0 {
				_ = store.Delete(ctx, token)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, store.Len())
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok := NewToken()
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
