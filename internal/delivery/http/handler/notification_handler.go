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

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusCreated, "Notification created successfully", notification)
}

// GetMyNotifications lists the authenticated donor's notifications
// with demande and medecin details
func (h *NotificationHandler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationUsecase.GetMine(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) GetAllNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.GetByID(r.Context(), notificationID)
	if err != nil {
		if err == usecase.ErrNotificationNotFound {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Notification retrieved successfully", notification)
}

// UpdateNotification is restricted to the owning donor
func (h *NotificationHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	var req dto.UpdateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.Update(r.Context(), notificationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		case usecase.ErrNotificationNotOwned:
			response.Forbidden(w, "You are not authorized to update this notification")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification updated successfully", notification)
}

// DeleteNotification is restricted to the owning donor
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.Delete(r.Context(), notificationID); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		case usecase.ErrNotificationNotOwned:
			response.Forbidden(w, "You are not authorized to delete this notification")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.NoContent(w)
}
