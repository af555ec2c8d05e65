package job

import (
	"Ronghua/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// Sweeper 可批量清理过期会话的存储，redis 存储依赖 TTL 不需要
type Sweeper interface {
	Sweep(now time.Time) int
}

type SessionSweepJob struct {
	store Sweeper
	now   func() time.Time
}

func NewSessionSweepJob(store Sweeper) *SessionSweepJob {
	return &SessionSweepJob{
		store: store,
		now:   time.Now,
	}
}

func (s *SessionSweepJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-session-"+uuid.NewString())
	n := s.store.Sweep(s.now())
	if n > 0 {
		log.InfoContext(ctx, "SessionSweepJob purged expired sessions", "count", n)
	}
}
