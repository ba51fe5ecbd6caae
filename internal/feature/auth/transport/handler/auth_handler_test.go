package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, fullName, email, password, role)
	}
	return entity.PublicUser{}, usecase.ErrInvalidInput
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"fullName": "Alice", "email": "a@x.com", "password": "secret123", "role": "customer"},
			mockRegister: func(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error) {
				return entity.PublicUser{ID: 1, FullName: fullName, Email: email, Role: role}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"id": float64(1), "fullName": "Alice", "email": "a@x.com", "role": "customer"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"fullName": "Alice", "email": "invalid-email", "password": "secret123"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"fullName": "Alice", "email": "a@x.com", "password": "short"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"fullName": "Alice", "email": "existing@x.com", "password": "secret123"},
			mockRegister: func(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error) {
				return entity.PublicUser{}, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "email already exists"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegister}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

// TestAuthHandler_Register_NoHashInResponse verifies that the response
// never carries a password or hash field.
func TestAuthHandler_Register_NoHashInResponse(t *testing.T) {
	mockUC := &mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, fullName, email, password, role string) (entity.PublicUser, error) {
			return entity.PublicUser{ID: 1, FullName: fullName, Email: email, Role: role}, nil
		},
	}
	handler := NewAuthHandler(mockUC)

	router := gin.New()
	router.POST("/api/auth/register", handler.Register)

	body, _ := json.Marshal(gin.H{"fullName": "Alice", "email": "a@x.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret123")
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "a@x.com", "password": "secret123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "dummy-jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "dummy-jwt-token"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "secret123"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "a@x.com"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "wrong@x.com", "password": "wrong-password"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}
