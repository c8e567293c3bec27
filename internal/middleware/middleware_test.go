package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"account-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(header, value string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractToken(t *testing.T) {
	// missing header
	ctx, _ := newContext("", "")
	_, err := extractToken(ctx)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext(echo.HeaderAuthorization, "BadHeader")
	_, err = extractToken(ctx)
	require.Error(t, err)

	// bearer
	ctx, _ = newContext(echo.HeaderAuthorization, "Bearer tok123")
	tok, err := extractToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok123", tok)

	// X-Access-Token fallback
	ctx, _ = newContext(HeaderAccessToken, "tok456")
	tok, err = extractToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok456", tok)
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Minute)
	tok, err := tokens.Issue(2, "b@x.com")
	require.NoError(t, err)

	// success path
	ctx, rec := newContext(echo.HeaderAuthorization, "Bearer "+tok)
	called := false
	handler := RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.CustomClaims)
		require.Equal(t, 2, cl.UserID)
		require.Equal(t, "b@x.com", cl.Email)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("", "")
	called = false
	err = RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// forged token
	other := service.NewTokenService("other-secret", time.Minute)
	forged, err := other.Issue(2, "b@x.com")
	require.NoError(t, err)
	ctx, _ = newContext(echo.HeaderAuthorization, "Bearer "+forged)
	called = false
	err = RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)

	// X-Access-Token also accepted
	ctx, rec = newContext(HeaderAccessToken, tok)
	called = false
	require.NoError(t, RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}
