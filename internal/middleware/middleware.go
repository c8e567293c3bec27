package middleware

import (
	"net/http"
	"strings"

	"account-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// HeaderAccessToken 相容以自訂標頭帶令牌的客戶端。
const HeaderAccessToken = "X-Access-Token"

func extractToken(c echo.Context) (string, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		return parts[1], nil
	}
	if token := c.Request().Header.Get(HeaderAccessToken); token != "" {
		return token, nil
	}
	return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
}

// RequireAuth 先於任何欄位驗證與資料存取驗證令牌，失敗時 handler 不會執行。
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractToken(c)
			if err != nil {
				return err
			}
			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
