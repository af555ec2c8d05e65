package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session 管理员登录会话
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired 判断会话在 now 时刻是否已过期
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store 会话存储，实现需并发安全
type Store interface {
	Save(ctx context.Context, s *Session) error
	// Get 不存在或已过期时返回 ErrSessionNotFound
	Get(ctx context.Context, token string) (*Session, error)
	// Delete 删除不存在的会话不报错
	Delete(ctx context.Context, token string) error
}

// NewToken 生成随机会话令牌
func NewToken() string {
	return uuid.NewString()
}
