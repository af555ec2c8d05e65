package service

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/pkg/session"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"
)

type AdminAuthService interface {
	// Login 校验配置中的管理员账号，成功后创建会话
	Login(ctx context.Context, username, password string) (*session.Session, error)
	// Logout 会话不存在时同样返回成功
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

type AdminAuthServiceImpl struct {
	store session.Store
	admin config.AdminConfig
	ttl   time.Duration
	now   func() time.Time
}

func NewAdminAuthService(store session.Store, admin config.AdminConfig, sessionCfg config.SessionConfig) AdminAuthService {
	return &AdminAuthServiceImpl{
		store: store,
		admin: admin,
		ttl:   time.Duration(sessionCfg.TTLMinutes) * time.Minute,
		now:   time.Now,
	}
}

func (s *AdminAuthServiceImpl) Login(ctx context.Context, username, password string) (*session.Session, error) {
	userOK := security.SecureCompare(username, s.admin.Username)
	passOK := security.SecureCompare(password, s.admin.Password)
	if !userOK || !passOK || s.admin.Username == "" {
		log.WarnContext(ctx, "admin login rejected", "username", username)
		return nil, ErrAdminCredential
	}

	now := s.now()
	sess := &session.Session{
		Token:    session.NewToken(),
		Username: username,
		Role:     consts.AdminRoleSuper,
		LoginAt:  now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save admin session: %w", err)
	}
	log.InfoContext(ctx, "admin login", "username", username)
	return sess, nil
}

func (s *AdminAuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}
	return nil
}

func (s *AdminAuthServiceImpl) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sess, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load admin session: %w", err)
	}
	return sess, nil
}
