// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"log/slog"

	"ride-auth/internal/model"
	"ride-auth/internal/validation"
)

const (
	msgUserNotFound    = "User not found"
	msgInvalidPassword = "Invalid password"
	msgRegisterFailed  = "Error creating user"
	msgLoginFailed     = "Error logging in"
)

// Credentials 由 service.CredentialService 實作
type Credentials interface {
	Register(ctx context.Context, in validation.RegisterInput) (*model.User, error)
	Login(ctx context.Context, in validation.LoginInput) (string, error)
}

// Handler 註冊與登入的 HTTP 進入點
type Handler struct {
	creds     Credentials
	validator *validation.Validator
	logger    *slog.Logger
}

func NewHandler(creds Credentials, v *validation.Validator, logger *slog.Logger) *Handler {
	return &Handler{creds: creds, validator: v, logger: logger}
}
