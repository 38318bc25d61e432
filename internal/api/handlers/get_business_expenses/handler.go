package get_business_expenses

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
	"github.com/agendly/booking-service/internal/domain"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ExpenseService
	logger  Logger
}

func NewHandler(service ExpenseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/expenses?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/expenses - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var startDate, endDate *time.Time
	query := r.URL.Query()

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/expenses - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		startDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/expenses - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		endDate = &parsed
	}

	result, err := h.service.GetBusinessExpenses(r.Context(), businessID, startDate, endDate)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/expenses - Failed to get expenses: business_id=%d, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/expenses - %d expenses returned: business_id=%d",
		len(result.Expenses), businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
