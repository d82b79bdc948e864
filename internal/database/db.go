package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB 為 store 與健康檢查需要的最小 pgx 介面；*pgxpool.Pool 與 pgxmock 皆實作
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}
