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

	"greycare_backend/internal/feature/identity/domain/entity"
	"greycare_backend/internal/feature/identity/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, in usecase.SignupInput) error
	LoginFunc  func(ctx context.Context, email, phone, password string) (*entity.User, error)
}

// Signup is the mock implementation of the Signup method.
func (m *mockAuthUsecase) Signup(ctx context.Context, in usecase.SignupInput) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, phone, password string) (*entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, phone, password)
	}
	return nil, errors.New("login failed") // Default: failure
}

// signupBody is a complete valid request body; tests override single keys.
func signupBody(overrides gin.H) gin.H {
	body := gin.H{
		"name":          "Abdul Karim",
		"phone":         "01712345678",
		"age":           67,
		"gender":        "male",
		"email":         "karim@gmail.com",
		"guardianEmail": "guardian@yahoo.com",
		"guardianPhone": "1712345678",
		"password":      "password123",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, in usecase.SignupInput) error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success: account registration",
			requestBody:    signupBody(nil),
			mockSignupFunc: func(ctx context.Context, in usecase.SignupInput) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing required field",
			requestBody:    signupBody(gin.H{"guardianEmail": ""}),
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: field format violation",
			requestBody: signupBody(gin.H{"phone": "12AB"}),
			mockSignupFunc: func(ctx context.Context, in usecase.SignupInput) error {
				return &usecase.ValidationError{Field: "phone", Message: "phone must be 10 digits, or 11 digits starting with 0"}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "phone: phone must be 10 digits, or 11 digits starting with 0",
		},
		{
			name:        "failure: duplicate email",
			requestBody: signupBody(gin.H{"email": "existing@gmail.com"}),
			mockSignupFunc: func(ctx context.Context, in usecase.SignupInput) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "user already exists",
		},
		{
			name:        "failure: storage error hides detail",
			requestBody: signupBody(nil),
			mockSignupFunc: func(ctx context.Context, in usecase.SignupInput) error {
				return errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/signup", handler.Signup)

			w := postJSON(t, router, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, responseBody["error"])
			} else {
				assert.Equal(t, "user registered successfully", responseBody["message"])
			}
			// The credential must never appear in a response
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storedUser := &entity.User{
		ID:       1,
		Name:     "Abdul Karim",
		Phone:    "01712345678",
		Email:    "karim@gmail.com",
		Password: "$2a$10$secret-hash-never-echoed",
	}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, phone, password string) (*entity.User, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: login by email",
			requestBody: gin.H{"email": "karim@gmail.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return storedUser, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success: login by phone alias",
			requestBody: gin.H{"phone": "01712345678", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return storedUser, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "karim@gmail.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: no identifier",
			requestBody: gin.H{"password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return nil, &usecase.ValidationError{Field: "email", Message: "email or phone is required"}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email: email or phone is required",
		},
		{
			name:        "failure: unknown identifier",
			requestBody: gin.H{"email": "nobody@gmail.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "user not found",
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"email": "karim@gmail.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid credentials",
		},
		{
			name:        "failure: storage error hides detail",
			requestBody: gin.H{"email": "karim@gmail.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, phone, password string) (*entity.User, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", handler.Login)

			w := postJSON(t, router, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var responseBody gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Equal(t, tt.expectedError, responseBody["error"])
			} else {
				var resp struct {
					Message string `json:"message"`
					User    gin.H  `json:"user"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "login successful", resp.Message)
				assert.Equal(t, storedUser.Name, resp.User["name"])
				assert.Equal(t, storedUser.Email, resp.User["email"])
			}
			// The stored hash must never appear in a response
			assert.NotContains(t, w.Body.String(), "secret-hash")
		})
	}
}
