// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired 令牌已過期。
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid 簽章不符或令牌格式錯誤。
	ErrTokenInvalid = errors.New("token invalid")
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService 持有簽章密鑰與存取令牌效期。
// 密鑰在啟動時注入且不可變，驗證是純函式，不查任何外部狀態，
// 因此令牌在到期前無法撤銷。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService。ttl <= 0 時使用預設 24 小時。
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL 回傳設定的令牌效期。
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue 依據使用者 ID 與 Email 產生 HS256 JWT。
func (s *TokenService) Issue(userID int, email string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌。
// 過期回傳 ErrTokenExpired，其餘失敗一律回傳 ErrTokenInvalid，不外洩內部細節。
func (s *TokenService) Verify(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
