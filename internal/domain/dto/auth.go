package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}
