// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"account-api/internal/api"
	"account-api/internal/database"
	"account-api/internal/service"
	"account-api/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT。
// 未註冊的 Email 與密碼錯誤回覆完全相同，無法從回應分辨帳號是否存在。
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing input values"})
		}

		email := strings.ToLower(*req.Email)
		userID, passwordHash, err := getUserCredentialsByEmail(c.Request().Context(), db, email)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "store unavailable"})
		}

		if err := comparePassword(passwordHash, *req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(userID, email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			ExpiresAt:   time.Now().Add(tokens.TTL()),
		})
	}
}
