package api

// UserResponse 僅包含公開欄位，密碼哈希不外洩。
// swagger:model api.UserResponse
type UserResponse struct {
	UserID int    `json:"user_id" example:"1"`
	Email  string `json:"email" example:"alice@example.com"`
	Name   string `json:"name" example:"Alice"`
}
