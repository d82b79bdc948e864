// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPort       = "3002"
	defaultBcryptCost = 10
)

// Config 服務啟動所需的環境設定
type Config struct {
	DatabaseURL   string
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	WorkerCount   int
	BcryptCost    int
	LogFormat     string
}

// Addr 回傳 echo 監聽位址
func (c Config) Addr() string {
	return ":" + c.Port
}

// RedisEnabled 只有設定 REDIS_ADDR 時才連 Redis
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// FromEnv 從環境變數讀取設定；JWT_SECRET 不在此檢查，登入時才讀取
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		WorkerCount:   1,
		BcryptCost:    defaultBcryptCost,
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			return Config{}, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.RedisDB = idx
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return Config{}, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = c
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c < bcrypt.MinCost || c > bcrypt.MaxCost {
			return Config{}, fmt.Errorf("無效的 BCRYPT_COST: %q", v)
		}
		cfg.BcryptCost = c
	}

	switch cfg.LogFormat {
	case "", "json", "text":
	default:
		return Config{}, fmt.Errorf("無效的 LOG_FORMAT: %q", cfg.LogFormat)
	}

	return cfg, nil
}
