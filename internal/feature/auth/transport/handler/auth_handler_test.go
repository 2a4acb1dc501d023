package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc    func(ctx context.Context, email, name, password string) (string, int64, error)
	LoginFunc       func(ctx context.Context, email, password string) (string, int64, error)
	CurrentUserFunc func(ctx context.Context, userID string) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, name, password string) (string, int64, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, name, password)
	}
	return "dummy-token", 1800, nil // Default: success
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, int64, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", 0, usecase.ErrInvalidCredentials // Default: failure
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound // Default: not found
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, email, name, password string) (string, int64, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"email": "test@example.com", "name": "Test User", "password": "password123"},
			mockRegister: func(ctx context.Context, email, name, password string) (string, int64, error) {
				return "new-token", 1800, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "name": "Test User", "password": "password123"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"email": "test@example.com", "name": "Test User", "password": "short"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "existing@example.com", "name": "Test User", "password": "password123"},
			mockRegister: func(ctx context.Context, email, name, password string) (string, int64, error) {
				return "", 0, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: store error",
			requestBody: gin.H{"email": "test@example.com", "name": "Test User", "password": "password123"},
			mockRegister: func(ctx context.Context, email, name, password string) (string, int64, error) {
				return "", 0, errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegister}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/register", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var res map[string]any
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, "new-token", res["access_token"])
				assert.Equal(t, "bearer", res["token_type"])
				assert.Equal(t, float64(1800), res["expires_in"])
			}
		})
	}
}

func TestAuthHandler_Register_ConflictMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, email, name, password string) (string, int64, error) {
			return "", 0, usecase.ErrEmailAlreadyExists
		},
	}
	h := NewAuthHandler(mockUC)
	router := gin.New()
	router.POST("/api/auth/register", h.Register)

	body, _ := json.Marshal(gin.H{"email": "existing@example.com", "name": "X", "password": "password123"})
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var res gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Email already registered", res["error"])
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (string, int64, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, int64, error) {
				return "dummy-jwt-token", 1800, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "wrong@example.com", "password": "wrong-password"},
			mockLogin: func(ctx context.Context, email, password string) (string, int64, error) {
				return "", 0, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
		{
			name:        "failure: token generation error",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, int64, error) {
				return "", 0, errors.New("signing failed")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var res gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, tt.expectedError, res["error"])
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// withUser はAuthRequiredミドルウェアの代わりに検証済みユーザーIDを設定します。
	withUser := func(userID string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if userID != "" {
				c.Set(jwtmw.ContextUserID, userID)
			}
			c.Next()
		}
	}

	t.Run("returns the token-derived user", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID string) (*entity.User, error) {
				assert.Equal(t, "user-1", userID)
				return &entity.User{ID: "user-1", Email: "me@example.com", Name: "Me"}, nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/api/auth/me", withUser("user-1"), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "user-1", res["id"])
		assert.Equal(t, "me@example.com", res["email"])
		assert.Equal(t, "Me", res["name"])
		assert.NotContains(t, res, "password_hash")
	})

	t.Run("401 when no verified identity in context", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/api/auth/me", withUser(""), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("401 when the token subject no longer exists", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}) // default: ErrUserNotFound

		router := gin.New()
		router.GET("/api/auth/me", withUser("ghost"), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
