package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
	"github.com/agendly/booking-service/internal/domain"
	getAvailableSlots "github.com/agendly/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidBusinessID       = "некорректный ID бизнеса"
	msgInvalidProfessionalID   = "некорректный ID специалиста"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration         = "некорректная длительность"
	msgProfessionalNotFound    = "специалист не найден"
	msgProfessionalNotBookable = "специалист не принимает бронирования"
	msgDateInPast              = "дата не может быть в прошлом"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/professionals/{professionalId}/slots?date=YYYY-MM-DD&durationMinutes=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Длительность опциональна: по умолчанию минимальная
	durationMinutes := domain.MinReservationDurationMinutes
	if raw := r.URL.Query().Get("durationMinutes"); raw != "" {
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BusinessID:      businessID,
		ProfessionalID:  professionalID,
		Date:            date,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotBookable):
			h.logger.Warn("GET /slots - Professional not bookable: professional_id=%d", professionalID)
			handlers.RespondConflict(w, msgProfessionalNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Date in past: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /slots - Failed to get slots: business_id=%d, professional_id=%d, error=%v",
				businessID, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - %d slots returned: business_id=%d, professional_id=%d",
		len(result.Slots), businessID, professionalID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
