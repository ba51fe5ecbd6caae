// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register
// endpoint. It uses Gin's binding tags for validation (required, email
// format, password length). Role is optional and defaults server-side.
type RegisterReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}
