package handler

import (
	"encoding/json"
	"net/http"

	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/usecase"
	"blood-donation-api/pkg/response"
	"blood-donation-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DonneurHandler struct {
	donneurUsecase usecase.DonneurUsecase
	validator      *validator.CustomValidator
}

func NewDonneurHandler(donneurUsecase usecase.DonneurUsecase, validator *validator.CustomValidator) *DonneurHandler {
	return &DonneurHandler{
		donneurUsecase: donneurUsecase,
		validator:      validator,
	}
}

func (h *DonneurHandler) CreateDonneur(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDonneurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donneur, err := h.donneurUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusBadRequest, "A user with this email already exists", nil)
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donneur created successfully", donneur)
}

func (h *DonneurHandler) GetAllDonneurs(w http.ResponseWriter, r *http.Request) {
	donneurs, err := h.donneurUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Donneurs retrieved successfully", donneurs)
}

func (h *DonneurHandler) GetDonneur(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donneurID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donneur ID", nil)
		return
	}

	donneur, err := h.donneurUsecase.GetByID(r.Context(), donneurID)
	if err != nil {
		if err == usecase.ErrDonneurNotFound {
			response.NotFound(w, "Donneur not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Donneur retrieved successfully", donneur)
}

func (h *DonneurHandler) UpdateDonneur(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donneurID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donneur ID", nil)
		return
	}

	var req dto.UpdateDonneurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donneur, err := h.donneurUsecase.Update(r.Context(), donneurID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDonneurNotFound:
			response.NotFound(w, "Donneur not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Donneur updated successfully", donneur)
}

func (h *DonneurHandler) DeleteDonneur(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donneurID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donneur ID", nil)
		return
	}

	if err := h.donneurUsecase.Delete(r.Context(), donneurID); err != nil {
		switch err {
		case usecase.ErrDonneurNotFound:
			response.NotFound(w, "Donneur not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
