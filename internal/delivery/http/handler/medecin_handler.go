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

type MedecinHandler struct {
	medecinUsecase usecase.MedecinUsecase
	validator      *validator.CustomValidator
}

func NewMedecinHandler(medecinUsecase usecase.MedecinUsecase, validator *validator.CustomValidator) *MedecinHandler {
	return &MedecinHandler{
		medecinUsecase: medecinUsecase,
		validator:      validator,
	}
}

func (h *MedecinHandler) CreateMedecin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedecinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medecin, err := h.medecinUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusBadRequest, "A user with this email already exists", nil)
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medecin created successfully", medecin)
}

func (h *MedecinHandler) GetAllMedecins(w http.ResponseWriter, r *http.Request) {
	medecins, err := h.medecinUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Medecins retrieved successfully", medecins)
}

func (h *MedecinHandler) GetMedecin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medecinID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	medecin, err := h.medecinUsecase.GetByID(r.Context(), medecinID)
	if err != nil {
		if err == usecase.ErrMedecinNotFound {
			response.NotFound(w, "Medecin not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Medecin retrieved successfully", medecin)
}

func (h *MedecinHandler) UpdateMedecin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medecinID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	var req dto.UpdateMedecinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medecin, err := h.medecinUsecase.Update(r.Context(), medecinID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Medecin updated successfully", medecin)
}

func (h *MedecinHandler) DeleteMedecin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medecinID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	if err := h.medecinUsecase.Delete(r.Context(), medecinID); err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
