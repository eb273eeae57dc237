package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T, ttl time.Duration) (*SessionService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewSessionService(rdb, ttl), mr
}

func TestSessionService_CreateAndResolve(t *testing.T) {
	svc, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestSessionService_Resolve_Unauthenticated(t *testing.T) {
	svc, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	// token 缺失和未知 token 统一按未登录处理
	_, err := svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionService_Expiry(t *testing.T) {
	svc, mr := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Create(ctx, 7)
	require.NoError(t, err)

	// 过期后等同于未登录
	mr.FastForward(2 * time.Hour)

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionService_Destroy(t *testing.T) {
	svc, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, token))

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// 销毁不存在的会话不报错
	require.NoError(t, svc.Destroy(ctx, "no-such-token"))
	require.NoError(t, svc.Destroy(ctx, ""))
}

func TestSessionService_TokensAreIndependent(t *testing.T) {
	svc, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	tokenA, err := svc.Create(ctx, 1)
	require.NoError(t, err)
	tokenB, err := svc.Create(ctx, 2)
	require.NoError(t, err)
	require.NotEqual(t, tokenA, tokenB)

	// 销毁一个不影响另一个
	require.NoError(t, svc.Destroy(ctx, tokenA))

	userID, err := svc.Resolve(ctx, tokenB)
	require.NoError(t, err)
	assert.EqualValues(t, 2, userID)
}
