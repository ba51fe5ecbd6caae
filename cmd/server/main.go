package main

import (
	"log"

	"user_backend/internal/app/config"
	"user_backend/internal/app/router"
	"user_backend/internal/feature/auth/adapters"
	authhandler "user_backend/internal/feature/auth/transport/handler"
	authusecase "user_backend/internal/feature/auth/usecase"
	infradb "user_backend/internal/platform/db"
	"user_backend/internal/platform/hash"
	jwtmw "user_backend/internal/platform/jwt"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.Open(cfg.DB, cfg.RunMigrations)

	// Repository
	userRepo := adapters.NewUserGorm(db)

	// Platform services
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.JWTTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := authhandler.NewUserHandler(authUC)

	// Router
	r := router.New(authH, userH, tokens, cfg.TrustedOrigin)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
