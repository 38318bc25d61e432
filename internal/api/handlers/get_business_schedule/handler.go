package get_business_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/schedule - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	week, err := h.service.GetBusinessSchedule(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/schedule - Failed to get schedule: business_id=%d, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/schedule - Schedule retrieved successfully: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
