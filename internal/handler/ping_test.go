package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-auth/internal/cache"
	"ride-auth/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func serve(h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test-connection", nil)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestTestConnectionHandler(t *testing.T) {
	t.Run("db unhealthy", func(t *testing.T) {
		db := newMockDB(t)
		db.ExpectPing().WillReturnError(errors.New("fail"))

		rec := serve(TestConnectionHandler(db, nil, logging.Discard()))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"message":"Connection failed"}`, rec.Body.String())
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("db healthy without cache", func(t *testing.T) {
		db := newMockDB(t)
		db.ExpectPing()

		rec := serve(TestConnectionHandler(db, nil, logging.Discard()))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Connection successful"}`, rec.Body.String())
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db := newMockDB(t)
		db.ExpectPing()
		rdb := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("down"))
		}}

		rec := serve(TestConnectionHandler(db, rdb, logging.Discard()))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"message":"Connection failed"}`, rec.Body.String())
	})

	t.Run("db and cache healthy", func(t *testing.T) {
		db := newMockDB(t)
		db.ExpectPing()
		cacheCalled := false
		rdb := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
			cacheCalled = true
			return redis.NewStatusResult("PONG", nil)
		}}

		rec := serve(TestConnectionHandler(db, rdb, logging.Discard()))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, cacheCalled)
		require.JSONEq(t, `{"message":"Connection successful"}`, rec.Body.String())
	})
}
