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

type DemandeHandler struct {
	demandeUsecase usecase.DemandeUsecase
	validator      *validator.CustomValidator
}

func NewDemandeHandler(demandeUsecase usecase.DemandeUsecase, validator *validator.CustomValidator) *DemandeHandler {
	return &DemandeHandler{
		demandeUsecase: demandeUsecase,
		validator:      validator,
	}
}

// CreateDemande persists a demande for the authenticated medecin and
// fans out notifications to matching donors. A fan-out failure after
// the demande was persisted is reported as a server error; the demande
// is not rolled back.
func (h *DemandeHandler) CreateDemande(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDemandeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	demande, err := h.demandeUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "Demande created successfully", demande)
}

// GetMyDemandes lists the demandes created by the authenticated medecin
func (h *DemandeHandler) GetMyDemandes(w http.ResponseWriter, r *http.Request) {
	demandes, err := h.demandeUsecase.GetMine(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Demandes retrieved successfully", demandes)
}

func (h *DemandeHandler) GetAllDemandes(w http.ResponseWriter, r *http.Request) {
	demandes, err := h.demandeUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Demandes retrieved successfully", demandes)
}

func (h *DemandeHandler) GetDemande(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	demandeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid demande ID", nil)
		return
	}

	demande, err := h.demandeUsecase.GetByID(r.Context(), demandeID)
	if err != nil {
		if err == usecase.ErrDemandeNotFound {
			response.NotFound(w, "Demande not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Demande retrieved successfully", demande)
}

func (h *DemandeHandler) UpdateDemande(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	demandeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid demande ID", nil)
		return
	}

	var req dto.UpdateDemandeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	demande, err := h.demandeUsecase.Update(r.Context(), demandeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDemandeNotFound:
			response.NotFound(w, "Demande not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Demande updated successfully", demande)
}

func (h *DemandeHandler) DeleteDemande(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	demandeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid demande ID", nil)
		return
	}

	if err := h.demandeUsecase.Delete(r.Context(), demandeID); err != nil {
		switch err {
		case usecase.ErrDemandeNotFound:
			response.NotFound(w, "Demande not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
