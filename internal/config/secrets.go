// File: internal/config/secrets.go
package config

import "os"

// Secrets 提供簽發 token 用的金鑰；ok 為 false 代表尚未設定
type Secrets interface {
	JWTSecret() (secret string, ok bool)
}

// EnvSecrets 每次呼叫時才讀取 JWT_SECRET
type EnvSecrets struct{}

func (EnvSecrets) JWTSecret() (string, bool) {
	s := os.Getenv("JWT_SECRET")
	return s, s != ""
}

// StaticSecrets 固定金鑰，空字串視為未設定
type StaticSecrets string

func (s StaticSecrets) JWTSecret() (string, bool) {
	return string(s), s != ""
}
