package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"account-api/internal/api"
	"account-api/internal/cache"
	"account-api/internal/database"
	"account-api/internal/model"
	"account-api/internal/store"
	"account-api/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID    = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	listUsers      = store.ListUsers
	updateUser     = store.UpdateUser
	deleteUser     = store.DeleteUser
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

func toResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
}

// storeError 將未分類的 store 錯誤統一回 503，不外洩 SQL 細節。
func storeError(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "store unavailable"})
}

// @Summary     List users or look one up by email
// @Description 回傳所有使用者；帶 email query 時只查該 Email 的使用者
// @Tags        users
// @Produce     json
// @Param       email query string false "使用者 Email"
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		// email 參數存在即走單筆查詢，空字串也算有值
		if c.QueryParams().Has("email") {
			user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(c.QueryParam("email")))
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			if err != nil {
				return storeError(c)
			}
			return c.JSON(http.StatusOK, toResponse(user))
		}

		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return storeError(c)
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者公開資料，結果快取五分鐘
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			// 非數字 ID 視同查無此人
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		key := userCacheKey(id)
		if raw, err := rdb.Get(c.Request().Context(), key).Result(); err == nil {
			var resp api.UserResponse
			if json.Unmarshal([]byte(raw), &resp) == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return storeError(c)
		}

		resp := toResponse(user)
		if buf, err := json.Marshal(resp); err == nil {
			rdb.Set(c.Request().Context(), key, buf, userCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user's name
// @Description 透過 ID 查詢並回傳使用者姓名子資源
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {string} string
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/name [get]
func GetUserNameHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return storeError(c)
		}
		return c.JSON(http.StatusOK, user.Name)
	}
}

// @Summary     Update a user by ID
// @Description 根據使用者 ID 更新 Email 與姓名
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Param       request body api.UpdateUserRequest true "更新資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing input values"})
		}

		err = updateUser(c.Request().Context(), db, &model.User{
			ID:    id,
			Email: strings.ToLower(*req.Email),
			Name:  *req.Name,
		})
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}
		if err != nil {
			return storeError(c)
		}

		wp.Submit(func() { rdb.Del(context.Background(), userCacheKey(id)) })
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除帳號；仍持有 items 的使用者無法刪除
// @Tags        users
// @Param       id path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		err = deleteUser(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if errors.Is(err, store.ErrUserHasItems) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user still owns items"})
		}
		if err != nil {
			return storeError(c)
		}

		wp.Submit(func() { rdb.Del(context.Background(), userCacheKey(id)) })
		return c.NoContent(http.StatusNoContent)
	}
}
