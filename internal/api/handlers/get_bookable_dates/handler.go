package get_bookable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	getBookableDates "github.com/m04kA/SMC-MarketplaceService/internal/usecase/get_bookable_dates"
)

const (
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgServiceNotFound       = "услуга не найдена"
	msgScheduleNotConfigured = "у исполнителя не настроено расписание"
)

type Handler struct {
	useCase GetBookableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/bookable-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/bookable-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Даты, уже занятые самим клиентом, исключаются, поэтому нужен userID
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /services/{id}/bookable-dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableDates.Request{
		ServiceID:  serviceID,
		CustomerID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookableDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/bookable-dates - Invalid input: service_id=%d: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, getBookableDates.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/bookable-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getBookableDates.ErrScheduleNotConfigured):
			h.logger.Warn("GET /services/{id}/bookable-dates - Schedule not configured: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleNotConfigured)

		default:
			h.logger.Error("GET /services/{id}/bookable-dates - Failed to get dates: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/bookable-dates - Dates retrieved: service_id=%d, user_id=%d, count=%d",
		serviceID, userID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
