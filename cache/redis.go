package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"linkedin_branding/config"
	"linkedin_branding/logger"
)

// TrendKey 行业趋势列表的固定缓存键
const TrendKey = "industry_trends"

// TrendStore 行业趋势缓存接口
type TrendStore interface {
	// 无条件覆盖写入趋势列表（刷新语义，非用户数据）
	SetTrends(ctx context.Context, trends []string) error

	// 读取趋势列表。键不存在或读取降级时返回空列表和nil错误，
	// 生成接口不允许因缓存问题整体失败
	GetTrends(ctx context.Context) ([]string, error)
}

// RedisTrendCache 基于Redis的趋势缓存
type RedisTrendCache struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisClient 根据配置创建Redis客户端
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewRedisTrendCache(client *redis.Client, cfg *config.Config) *RedisTrendCache {
	timeoutSec := cfg.Redis.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = 3 // 默认值
	}
	return &RedisTrendCache{
		client:  client,
		timeout: time.Duration(timeoutSec) * time.Second,
	}
}

// SetTrends 序列化趋势列表并覆盖写入固定键。
// 启动时的种子写入把错误视为致命，由调用方决定
func (c *RedisTrendCache) SetTrends(ctx context.Context, trends []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := json.Marshal(trends)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, TrendKey, data, 0).Err()
}

// GetTrends 读取趋势列表，键不存在或网络故障时降级为空列表
func (c *RedisTrendCache) GetTrends(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Get(ctx, TrendKey).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("读取趋势缓存失败，降级为空列表", "error", err)
		}
		return []string{}, nil
	}

	var trends []string
	if err := json.Unmarshal([]byte(raw), &trends); err != nil {
		logger.Warn("趋势缓存内容损坏，降级为空列表", "error", err)
		return []string{}, nil
	}
	return trends, nil
}
