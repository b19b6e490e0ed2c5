package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/usecase"
	"blood-donation-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	signupFn func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	loginFn  func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	getMeFn  func(ctx context.Context) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthUsecase) GetMe(ctx context.Context) (*dto.UserResponse, error) {
	return m.getMeFn(ctx)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupHandler_Success(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		signupFn: func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: uuid.New(), Nom: req.Name, Email: req.Email, Role: req.Role}, nil
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	rec := postJSON(t, h.Signup, "/api/auth/signup", dto.SignupRequest{
		Name:     "Awa",
		Email:    "awa@donors.test",
		Password: "secret123",
		Role:     "donneur",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signup successful")
}

func TestSignupHandler_DuplicateEmailIs400(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		signupFn: func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	rec := postJSON(t, h.Signup, "/api/auth/signup", dto.SignupRequest{
		Name:     "Awa",
		Email:    "taken@donors.test",
		Password: "secret123",
		Role:     "donneur",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "A user with this email already exists")
}

func TestSignupHandler_ValidationErrors(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	tests := []struct {
		name string
		body dto.SignupRequest
	}{
		{
			name: "missing email",
			body: dto.SignupRequest{Name: "Awa", Password: "secret123", Role: "donneur"},
		},
		{
			name: "short password",
			body: dto.SignupRequest{Name: "Awa", Email: "awa@donors.test", Password: "abc", Role: "donneur"},
		},
		{
			name: "unknown role",
			body: dto.SignupRequest{Name: "Awa", Email: "awa@donors.test", Password: "secret123", Role: "admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Signup, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Validation failed")
		})
	}
}

func TestSignupHandler_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestLoginHandler_Success(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				Token: "a-signed-token",
				User:  dto.UserResponse{ID: uuid.New(), Email: req.Email, Role: "medecin"},
			}, nil
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	rec := postJSON(t, h.Login, "/api/auth/login", dto.LoginRequest{
		Email:    "diallo@hospital.test",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "a-signed-token", body.Data.Token)
}

func TestLoginHandler_BadCredentialsAre401(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	rec := postJSON(t, h.Login, "/api/auth/login", dto.LoginRequest{
		Email:    "diallo@hospital.test",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestGetMeHandler(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		getMeFn: func(ctx context.Context) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: uuid.New(), Nom: "Awa", Role: "donneur"}, nil
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetMe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Awa")
}

func TestGetMeHandler_NotFound(t *testing.T) {
	authUsecase := &mockAuthUsecase{
		getMeFn: func(ctx context.Context) (*dto.UserResponse, error) {
			return nil, usecase.ErrUserNotFound
		},
	}
	h := NewAuthHandler(authUsecase, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetMe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
