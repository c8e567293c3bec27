// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"account-api/internal/cache"
	"account-api/internal/database"
	"account-api/internal/handler"
	"account-api/internal/handler/auth"
	"account-api/internal/handler/users"
	"account-api/internal/middleware"
	"account-api/internal/service"
	"account-api/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, wp worker.Pool) {
	api := e.Group("/api/v1")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth(tokens))

	// 註冊與登入走獨立的限流
	authLimit := middleware.RateLimit(5, 10)
	api.POST("/register", auth.RegisterHandler(db), authLimit)
	api.POST("/login", auth.LoginHandler(db, tokens), authLimit)

	// Users CRUD（需登入）
	apiUsers := api.Group("/users", middleware.RequireAuth(tokens))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db, rdb))
	apiUsers.GET("/:id/name", users.GetUserNameHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db, rdb, wp))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb, wp))
	// 舊版客戶端以 GET 觸發刪除，保留別名
	apiUsers.GET("/:id/manage/delete", users.DeleteUserHandler(db, rdb, wp))
}
