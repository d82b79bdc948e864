package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache 服務使用的 Redis 操作；目前只用於連線檢查
type Cache interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// FakeCache 測試替身，未設定的方法會 panic (Close 除外)
type FakeCache struct {
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
