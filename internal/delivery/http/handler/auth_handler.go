package handler

import (
	"encoding/json"
	"net/http"

	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/usecase"
	"blood-donation-api/pkg/response"
	"blood-donation-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Signup handles user registration for all three roles. Duplicate
// emails in either identity table come back as a 400.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Signup(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusBadRequest, "A user with this email already exists", nil)
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Signup successful. Please log in.", user)
}

// Login authenticates against both identity tables and returns a
// bearer token. All credential failures share one message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}

// GetMe returns the authenticated identity and role
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetMe(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
