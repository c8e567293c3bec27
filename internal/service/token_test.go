package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueVerify(t *testing.T) {
	svc := NewTokenService("testsecret", time.Minute)

	tok, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "42", claims.Subject)
}

func TestTokenDefaultTTL(t *testing.T) {
	svc := NewTokenService("s", 0)
	require.Equal(t, 24*time.Hour, svc.TTL())
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("testsecret", time.Minute)
	// 效期為負的 service 發出的令牌一出生就過期
	expired := &TokenService{secret: []byte("testsecret"), ttl: -time.Minute}

	tok, err := expired.Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Minute)
	verifier := NewTokenService("secret-b", time.Minute)

	tok, err := issuer.Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenUnexpectedMethod(t *testing.T) {
	svc := NewTokenService("testsecret", time.Minute)

	// alg: none 必須被拒絕
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{UserID: 1})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("testsecret", time.Minute)
	_, err := svc.Verify("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
