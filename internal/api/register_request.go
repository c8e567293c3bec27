package api

// RegisterRequest 的欄位使用指標：缺少欄位視為 MissingFields，空字串視為有值。
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    *string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Name     *string `json:"name" form:"name" validate:"required" example:"Alice"`
	Password *string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
