// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "user_backend/internal/feature/auth/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
	jwtmw "user_backend/internal/platform/jwt"
)

// New builds the router. The authentication entry points and the health
// probe are the only public routes; everything else under /api sits
// behind the bearer-token guard, so an operation is protected unless
// listed here as public.
func New(authH *authhandler.AuthHandler, userH *authhandler.UserHandler,
	verifier jwtmw.Verifier, trustedOrigin string) *gin.Engine {
	r := gin.Default()

	// CORS is a transport concern for the configured origin only; it
	// does not bypass the token guard below.
	if trustedOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins: []string{trustedOrigin},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		}))
	}

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// Public authentication entry points
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
	}

	// Everything else requires a valid bearer token
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(verifier))
	{
		api.GET("/users/me", userH.Me)
	}

	return r
}
