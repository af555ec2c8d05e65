package session

import (
	"Ronghua/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore 会话以 JSON 存放，过期交给 redis TTL
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}
	return s.rdb.Set(ctx, consts.AdminSessionKey+sess.Token, data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.rdb.Get(ctx, consts.AdminSessionKey+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	sess := &Session{}
	if err = json.Unmarshal(data, sess); err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, consts.AdminSessionKey+token).Err()
}
