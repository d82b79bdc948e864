// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"ride-auth/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL 登入 token 有效期限
const SessionTTL = time.Hour

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID string     `json:"userId"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer 簽發 session token
type TokenIssuer interface {
	Issue(user model.User, secret string, ttl time.Duration) (string, error)
}

// JWTIssuer 以 HS256 簽發 JWT
type JWTIssuer struct{}

func (JWTIssuer) Issue(user model.User, secret string, ttl time.Duration) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken 驗證並解析 JWT；目前沒有路由使用，供工具與測試檢查 token 內容
func ParseToken(tokenString, secret string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
