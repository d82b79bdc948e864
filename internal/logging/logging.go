// Package logging 建立服務共用的 slog.Logger
package logging

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "ride-auth"

// Setup 依 format ("json" 或 "text"，空字串視為 json) 建立 logger；w 為 nil 時寫到 os.Stderr
func Setup(format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", serviceName))
}

// Discard 測試用，丟棄所有輸出
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
