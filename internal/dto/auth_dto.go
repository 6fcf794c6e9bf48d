package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Next     string `json:"next" form:"next"`
}

type UserResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type LoginPageResponse struct {
	Fields []string `json:"fields"`
	Next   string   `json:"next,omitempty"`
}
