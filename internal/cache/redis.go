package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout 啟動時 Ping 的時限
const connectTimeout = 5 * time.Second

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// NewRedisClient 建立連線並先 Ping 一次確認可用
func NewRedisClient(ctx context.Context, addr, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("NewRedisClient: %w", err)
	}
	return client, nil
}
