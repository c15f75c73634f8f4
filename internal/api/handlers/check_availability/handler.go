package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
)

const (
	msgInvalidServiceID    = "некорректный ID услуги"
	msgAvailabilityUnknown = "доступность услуги временно неизвестна"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/availability - Invalid service ID: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, bookings.ErrAvailabilityUnknown):
			// Неизвестная доступность никогда не отдаётся как "свободно"
			h.logger.Error("GET /services/{id}/availability - Availability unknown: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("GET /services/{id}/availability - Failed to check: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/availability - Checked: service_id=%d, available=%t",
		serviceID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
