package create_reservation

import (
	"errors"
	"net/http"

	"github.com/agendly/booking-service/internal/api/handlers"
	"github.com/agendly/booking-service/internal/api/middleware"
	createReservation "github.com/agendly/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDateOrTime       = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgSlotNotAvailable        = "выбранный временной слот недоступен"
	msgProfessionalNotFound    = "специалист не найден"
	msgProfessionalNotBookable = "специалист не принимает бронирования"
	msgServiceNotFound         = "услуга не найдена"
	msgClosedOnDate            = "в выбранную дату приём не ведется"
	msgInvalidBookingDate      = "некорректная дата бронирования"
	msgInvalidTimeSlot         = "временной слот вне рабочих часов"
	msgTooLateToBook           = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Клиент определяется по аутентификации, а не по телу запроса
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: client_id=%d, professional_id=%d",
				clientID, req.ProfessionalID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrProfessionalNotFound):
			h.logger.Warn("POST /reservations - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createReservation.ErrProfessionalNotBookable):
			h.logger.Warn("POST /reservations - Professional not bookable: professional_id=%d", req.ProfessionalID)
			handlers.RespondConflict(w, msgProfessionalNotBookable)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrClosedOnDate):
			h.logger.Warn("POST /reservations - Closed on date: business_id=%d, date=%s", req.BusinessID, req.BookingDate)
			handlers.RespondBadRequest(w, msgClosedOnDate)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid booking date: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, client_id=%d",
		result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
