package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Ping(context.Background()) })
	require.NoError(t, c.Close())

	pinged := false
	c.PingFn = func(context.Context) *redis.StatusCmd {
		pinged = true
		return redis.NewStatusResult("PONG", nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "PONG", c.Ping(context.Background()).Val())
	require.EqualError(t, c.Close(), "close")
	require.True(t, pinged)
}
