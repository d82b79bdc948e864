// File: internal/service/errors.go
package service

import "errors"

// 登入/註冊失敗分類，handler 以 errors.Is 對應 HTTP 狀態
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrSecretNotConfigured = errors.New("token signing secret not configured")
	ErrStorage             = errors.New("storage failure")
)

const (
	CodeUserNotFound     = "AUTH_USER_NOT_FOUND"
	CodeInvalidPassword  = "AUTH_INVALID_PASSWORD"
	CodeSecretMissing    = "AUTH_SECRET_MISSING"
	CodeStorageFailed    = "AUTH_STORAGE_FAILED"
	CodeTokenIssueFailed = "AUTH_TOKEN_ISSUE_FAILED"
)
