package get_vendor_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/availability"
)

const (
	msgInvalidVendorID = "некорректный ID исполнителя"
	msgNotFound        = "расписание не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorIDStr := vars["vendorId"]

	vendorID, err := strconv.ParseInt(vendorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/availability - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	result, err := h.service.GetByVendorID(r.Context(), vendorID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/availability - Invalid vendor ID: vendor_id=%d", vendorID)
			handlers.RespondBadRequest(w, msgInvalidVendorID)

		case errors.Is(err, availability.ErrScheduleNotFound):
			h.logger.Warn("GET /vendors/{id}/availability - Schedule not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/availability - Failed to get schedule: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/availability - Schedule retrieved: vendor_id=%d", vendorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
