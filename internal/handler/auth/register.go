// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"account-api/internal/api"
	"account-api/internal/database"
	"account-api/internal/model"
	"account-api/internal/service"
	"account-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword              = service.HashPassword
	comparePassword           = service.ComparePassword
	createUser                = store.CreateUser
	getUserCredentialsByEmail = store.GetUserCredentialsByEmail
)

// RegisterHandler 建立新帳號，成功不發令牌，呼叫端需另行登入。
// @Summary     Register a new user
// @Description 接收 email、name、password 建立新帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 "Created"
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing input values"})
		}

		hash, err := hashPassword(*req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Email:        strings.ToLower(*req.Email),
			Name:         *req.Name,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "store unavailable"})
		}

		return c.NoContent(http.StatusCreated)
	}
}
