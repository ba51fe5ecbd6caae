// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"user_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email
	// already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether the plaintext matches the stored hash.
	// Malformed hashes verify as false; Verify never fails open.
	Verify(plaintext, hashed string) bool
}

// TokenIssuer abstracts signed token issuance.
type TokenIssuer interface {
	// GenerateToken creates a signed bearer token carrying the user's
	// identity and role claims.
	GenerateToken(userID uint, email, role string) (string, error)
}

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so the missing-user and wrong-password login paths do the
// same amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase with its collaborators
// injected explicitly.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// normalizeEmail lower-cases the email so the store's unique index
// enforces case-insensitive uniqueness.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password and returns the
// public view of the stored record.
func (u *authUsecase) Register(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return entity.PublicUser{}, ErrInvalidInput
	}
	if role == "" {
		role = entity.DefaultRole
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return entity.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FullName: fullName,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return entity.PublicUser{}, err
	}
	return user.Public(), nil
}

// Login authenticates a user and returns a signed bearer token on success.
// The hash comparison runs even when the email is unknown so both failure
// paths take comparable time, and both collapse to ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	ok := u.hasher.Verify(password, passwordHash)

	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// Profile returns the public view of the user identified by id.
func (u *authUsecase) Profile(ctx context.Context, id uint) (entity.PublicUser, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return entity.PublicUser{}, err
	}
	return user.Public(), nil
}
