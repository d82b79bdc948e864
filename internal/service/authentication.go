// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ride-auth/internal/config"
	"ride-auth/internal/model"
	"ride-auth/internal/store"
	"ride-auth/internal/validation"

	"github.com/samber/oops"
)

// UserStore 使用者資料存取
type UserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	// FindByEmail 查無資料時回傳包住 store.ErrNotFound 的錯誤
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// CredentialService 處理註冊與登入
type CredentialService struct {
	users   UserStore
	hasher  PasswordHasher
	tokens  TokenIssuer
	secrets config.Secrets
	logger  *slog.Logger
}

func NewCredentialService(users UserStore, hasher PasswordHasher, tokens TokenIssuer, secrets config.Secrets, logger *slog.Logger) *CredentialService {
	return &CredentialService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		secrets: secrets,
		logger:  logger,
	}
}

// Register 雜湊密碼後建立使用者，回傳存入的資料 (含密碼雜湊)
func (s *CredentialService) Register(ctx context.Context, in validation.RegisterInput) (*model.User, error) {
	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, oops.Code(CodeStorageFailed).
			With("operation", "hash password").
			Wrap(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	user, err := s.users.Create(ctx, &model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	})
	if err != nil {
		// email 重複也歸類為儲存失敗，不對外區分
		return nil, oops.Code(CodeStorageFailed).
			With("operation", "create user").
			With("duplicate_email", errors.Is(err, store.ErrDuplicateEmail)).
			Wrap(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login 依序：查使用者 → 比對密碼 → 確認金鑰 → 簽發 token
func (s *CredentialService) Login(ctx context.Context, in validation.LoginInput) (string, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", oops.Code(CodeUserNotFound).
				With("email", in.Email).
				Wrap(fmt.Errorf("%w: %w", ErrUserNotFound, err))
		}
		return "", oops.Code(CodeStorageFailed).
			With("operation", "find user by email").
			Wrap(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	match, err := s.hasher.Compare(ctx, in.Password, user.Password)
	if err != nil {
		return "", oops.Code(CodeStorageFailed).
			With("operation", "compare password").
			With("user_id", user.ID).
			Wrap(fmt.Errorf("%w: %w", ErrStorage, err))
	}
	if !match {
		return "", oops.Code(CodeInvalidPassword).
			With("user_id", user.ID).
			Wrap(ErrInvalidPassword)
	}

	secret, ok := s.secrets.JWTSecret()
	if !ok {
		return "", oops.Code(CodeSecretMissing).
			With("user_id", user.ID).
			Wrap(ErrSecretNotConfigured)
	}

	token, err := s.tokens.Issue(*user, secret, SessionTTL)
	if err != nil {
		return "", oops.Code(CodeTokenIssueFailed).
			With("user_id", user.ID).
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}
