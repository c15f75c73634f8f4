package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-MarketplaceService/internal/usecase/get_time_slots"
)

const (
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast            = "дата не может быть в прошлом"
	msgServiceNotFound       = "услуга не найдена"
	msgScheduleNotConfigured = "у исполнителя не настроено расписание"
	msgInvalidSchedule       = "расписание исполнителя настроено некорректно"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/time-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceIDStr := vars["serviceId"]

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/time-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/time-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/time-slots - Invalid input: service_id=%d: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, getTimeSlots.ErrInvalidDate):
			h.logger.Warn("GET /services/{id}/time-slots - Date in past: service_id=%d, date=%s", serviceID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getTimeSlots.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/time-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getTimeSlots.ErrScheduleNotConfigured):
			h.logger.Warn("GET /services/{id}/time-slots - Schedule not configured: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleNotConfigured)

		case errors.Is(err, getTimeSlots.ErrInvalidSchedule):
			// Ошибка конфигурации вендора, не пустой список слотов
			h.logger.Warn("GET /services/{id}/time-slots - Invalid vendor schedule: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		default:
			h.logger.Error("GET /services/{id}/time-slots - Failed to get slots: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/time-slots - Slots retrieved: service_id=%d, date=%s, count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
