// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

import "user_backend/internal/feature/auth/domain/entity"

// UserResponse is the JSON shape of a stored user returned to callers.
// The password hash never appears here.
type UserResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// NewUserResponse maps the public user view to its JSON shape.
func NewUserResponse(u entity.PublicUser) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// TokenResponse is the JSON body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
