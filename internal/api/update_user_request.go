// File: internal/api/update_user_request.go
package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Email *string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Name  *string `json:"name" form:"name" validate:"required" example:"Alice"`
}
