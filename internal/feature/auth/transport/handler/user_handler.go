package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/transport/http/dto"
	"user_backend/internal/feature/auth/usecase"
	jwtmw "user_backend/internal/platform/jwt"
)

// UserUsecase defines the profile operation the handler depends on.
type UserUsecase interface {
	// Profile returns the public view of the user identified by id.
	Profile(ctx context.Context, id uint) (entity.PublicUser, error)
}

// UserHandler handles HTTP requests for protected user endpoints.
// It relies on the route guard having already verified the token and
// stored the claims in the request context.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler with the usecase injected.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the authenticated user's own public view, resolved from the
// verified token subject.
func (h *UserHandler) Me(c *gin.Context) {
	id := c.GetUint(jwtmw.ContextUserID)

	view, err := h.users.Profile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "profile lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(view))
}
