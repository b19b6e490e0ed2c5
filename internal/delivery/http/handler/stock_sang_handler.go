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

type StockSangHandler struct {
	stockUsecase usecase.StockSangUsecase
	validator    *validator.CustomValidator
}

func NewStockSangHandler(stockUsecase usecase.StockSangUsecase, validator *validator.CustomValidator) *StockSangHandler {
	return &StockSangHandler{
		stockUsecase: stockUsecase,
		validator:    validator,
	}
}

func (h *StockSangHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStockSangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stock, err := h.stockUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBanqueNotFound:
			response.Error(w, http.StatusBadRequest, "Banque de sang not found", nil)
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Stock entry created successfully", stock)
}

func (h *StockSangHandler) GetAllStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.stockUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Stock entries retrieved successfully", stocks)
}

func (h *StockSangHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stockID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stock ID", nil)
		return
	}

	stock, err := h.stockUsecase.GetByID(r.Context(), stockID)
	if err != nil {
		if err == usecase.ErrStockNotFound {
			response.NotFound(w, "Stock entry not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Stock entry retrieved successfully", stock)
}

func (h *StockSangHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stockID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stock ID", nil)
		return
	}

	var req dto.UpdateStockSangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stock, err := h.stockUsecase.Update(r.Context(), stockID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStockNotFound:
			response.NotFound(w, "Stock entry not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Stock entry updated successfully", stock)
}

func (h *StockSangHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stockID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stock ID", nil)
		return
	}

	if err := h.stockUsecase.Delete(r.Context(), stockID); err != nil {
		switch err {
		case usecase.ErrStockNotFound:
			response.NotFound(w, "Stock entry not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
