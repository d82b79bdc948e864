// File: internal/service/password.go
package service

import (
	"context"
	"errors"

	"ride-auth/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost 預設 bcrypt 成本
const DefaultBcryptCost = 10

// maxPasswordBytes bcrypt 只使用前 72 個位元組
const maxPasswordBytes = 72

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// PasswordHasher 產生與比對密碼雜湊
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Compare 密碼不符時回傳 (false, nil)；雜湊格式錯誤等才回傳 error
	Compare(ctx context.Context, password, hash string) (bool, error)
}

// BcryptHasher 以 bcrypt 實作 PasswordHasher；pool 不為 nil 時在 worker pool 上運算
type BcryptHasher struct {
	cost int
	pool worker.Pool
}

func NewBcryptHasher(cost int, pool worker.Pool) *BcryptHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost, pool: pool}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	hashBytes, err := worker.Run(ctx, h.pool, func() ([]byte, error) {
		return bcryptGenerateFromPassword(passwordKey(password), h.cost)
	})
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Compare 比對明文密碼與 bcrypt 哈希
func (h *BcryptHasher) Compare(ctx context.Context, password, hash string) (bool, error) {
	return worker.Run(ctx, h.pool, func() (bool, error) {
		err := bcryptCompareHashAndPassword([]byte(hash), passwordKey(password))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	})
}

// passwordKey 超過 72 位元組的密碼截斷後再雜湊，註冊與登入使用同一把 key
func passwordKey(password string) []byte {
	key := []byte(password)
	if len(key) > maxPasswordBytes {
		key = key[:maxPasswordBytes]
	}
	return key
}
