package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession 表示 token 不存在或已过期，调用方统一视为未登录
var ErrNoSession = errors.New("no session")

const sessionKeyPrefix = "session:"

// SessionService 会话存储：不透明 token -> 用户ID，带过期时间
type SessionService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionService(rdb *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{rdb: rdb, ttl: ttl}
}

// TTL 会话有效期
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create 为用户创建新会话，返回不透明 token
func (s *SessionService) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	if err := s.rdb.Set(ctx, key, strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Resolve 由 token 解析出用户ID
// token 缺失、未知、过期一律返回 ErrNoSession，不作区分
func (s *SessionService) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	val, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, ErrNoSession
	}
	return userID, nil
}

// Destroy 删除会话，token 不存在时也不报错
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
