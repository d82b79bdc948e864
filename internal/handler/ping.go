// File: internal/handler/ping.go
package handler

import (
	"log/slog"
	"net/http"

	"ride-auth/internal/api"
	"ride-auth/internal/cache"
	"ride-auth/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	msgConnectionOK     = "Connection successful"
	msgConnectionFailed = "Connection failed"
)

// TestConnectionHandler 連線檢查；rdb 為 nil 時只檢查資料庫
// @Summary     檢查資料庫連線
// @Description 檢查資料庫 (以及已設定的 Redis) 是否可連線
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.MessageResponse
// @Router      /test-connection [get]
func TestConnectionHandler(db database.DB, rdb cache.Cache, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			logger.ErrorContext(ctx, "database unhealthy", "error", err)
			return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgConnectionFailed})
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.ErrorContext(ctx, "cache unhealthy", "error", err)
				return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgConnectionFailed})
			}
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgConnectionOK})
	}
}
