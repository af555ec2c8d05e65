package job

import (
	"Ronghua/internal/pkg/session"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSweepJobPurgesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	store := session.NewMemoryStore()

	require.NoError(t, store.Save(ctx, &session.Session{Token: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.Save(ctx, &session.Session{Token: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &session.Session{Token: "forever"}))

	j := NewSessionSweepJob(store)
	j.now = func() time.Time { return now }
	j.Run()

	assert.Equal(t, 2, store.Len())
}
