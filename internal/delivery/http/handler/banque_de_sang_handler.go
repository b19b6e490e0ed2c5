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

type BanqueDeSangHandler struct {
	banqueUsecase usecase.BanqueDeSangUsecase
	validator     *validator.CustomValidator
}

func NewBanqueDeSangHandler(banqueUsecase usecase.BanqueDeSangUsecase, validator *validator.CustomValidator) *BanqueDeSangHandler {
	return &BanqueDeSangHandler{
		banqueUsecase: banqueUsecase,
		validator:     validator,
	}
}

func (h *BanqueDeSangHandler) CreateBanque(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBanqueDeSangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	banque, err := h.banqueUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "Banque de sang created successfully", banque)
}

func (h *BanqueDeSangHandler) GetAllBanques(w http.ResponseWriter, r *http.Request) {
	banques, err := h.banqueUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Banques de sang retrieved successfully", banques)
}

func (h *BanqueDeSangHandler) GetBanque(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	banqueID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid banque ID", nil)
		return
	}

	banque, err := h.banqueUsecase.GetByID(r.Context(), banqueID)
	if err != nil {
		if err == usecase.ErrBanqueNotFound {
			response.NotFound(w, "Banque de sang not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Banque de sang retrieved successfully", banque)
}

func (h *BanqueDeSangHandler) UpdateBanque(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	banqueID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid banque ID", nil)
		return
	}

	var req dto.UpdateBanqueDeSangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	banque, err := h.banqueUsecase.Update(r.Context(), banqueID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBanqueNotFound:
			response.NotFound(w, "Banque de sang not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Banque de sang updated successfully", banque)
}

func (h *BanqueDeSangHandler) DeleteBanque(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	banqueID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid banque ID", nil)
		return
	}

	if err := h.banqueUsecase.Delete(r.Context(), banqueID); err != nil {
		switch err {
		case usecase.ErrBanqueNotFound:
			response.NotFound(w, "Banque de sang not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
