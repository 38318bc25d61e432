package create_expense

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
	"github.com/agendly/booking-service/internal/service/expenses"
	"github.com/agendly/booking-service/internal/service/expenses/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/businesses/{businessId}/expenses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/expenses - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.CreateExpenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/expenses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	expense, err := h.service.Create(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/expenses - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /businesses/{id}/expenses - Failed to create expense: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/expenses - Expense created successfully: expense_id=%d, business_id=%d",
		expense.ID, businessID)
	handlers.RespondJSON(w, http.StatusCreated, expense)
}
