package create_expense

import (
	"context"

	"github.com/agendly/booking-service/internal/service/expenses/models"
)

type ExpenseService interface {
	Create(ctx context.Context, businessID int64, req *models.CreateExpenseRequest) (*models.ExpenseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
