// File: internal/router/router.go
package router

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"ride-auth/internal/cache"
	"ride-auth/internal/database"
	"ride-auth/internal/handler"
	"ride-auth/internal/handler/auth"
)

// Setup 註冊所有路由；rdb 可為 nil
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, authHandler *auth.Handler, logger *slog.Logger) {
	api := e.Group("/api/auth")

	api.GET("/test-connection", handler.TestConnectionHandler(db, rdb, logger))
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
}
