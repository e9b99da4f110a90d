package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin_branding/config"
)

func newTestCache(t *testing.T) (*RedisTrendCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := &config.Config{}
	cfg.Redis.TimeoutSec = 2
	return NewRedisTrendCache(client, cfg), mr
}

func TestTrendCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	trends := []string{"AI trends", "Cloud computing", "Digital transformation"}
	require.NoError(t, cache.SetTrends(ctx, trends))

	got, err := cache.GetTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, trends, got)
}

func TestTrendCache_OverwriteIsRefresh(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetTrends(ctx, []string{"old"}))
	require.NoError(t, cache.SetTrends(ctx, []string{"new", "newer"}))

	got, err := cache.GetTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "newer"}, got)
}

func TestTrendCache_MissingKeyDegradesToEmpty(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetTrends(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTrendCache_CorruptValueDegradesToEmpty(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Set(TrendKey, "not-json")

	got, err := cache.GetTrends(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTrendCache_ReadFailureDegradesToEmpty(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close() // 读取必须降级为空列表，生成请求不能因缓存故障失败

	got, err := cache.GetTrends(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTrendCache_StartupWriteFailureIsHardError(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	err := cache.SetTrends(context.Background(), []string{"AI trends"})
	require.Error(t, err)
}
