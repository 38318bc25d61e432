package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
	rescheduleReservation "github.com/agendly/booking-service/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound             = "бронирование не найдено"
	msgNotReschedulable     = "бронирование не может быть перенесено"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgClosedOnDate         = "в выбранную дату приём не ведется"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgInvalidTimeSlot      = "временной слот вне рабочих часов"
	msgTooLateToBook        = "слишком поздно для переноса на этот слот"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrNotReschedulable):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Not reschedulable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Slot not available: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrClosedOnDate):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Closed on date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgClosedOnDate)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, rescheduleReservation.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid time slot: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleReservation.ErrTooLateToBook):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Too late: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed to reschedule: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled successfully: reservation_id=%d",
		reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
