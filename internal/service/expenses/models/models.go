package models

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// CreateExpenseRequest запрос на создание расхода
type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"` // "2025-10-15"
	Paid        bool    `json:"paid"`
}

// SetPaidRequest запрос на изменение статуса оплаты расхода
type SetPaidRequest struct {
	Paid bool `json:"paid"`
}

// ExpenseResponse ответ с данными расхода
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	BusinessID  int64     `json:"businessId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ExpenseDate string    `json:"expenseDate"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExpenseListResponse ответ со списком расходов
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// FromDomainExpense конвертирует domain модель в DTO
func FromDomainExpense(e *domain.Expense) *ExpenseResponse {
	if e == nil {
		return nil
	}

	return &ExpenseResponse{
		ID:          e.ID,
		BusinessID:  e.BusinessID,
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format(domain.DateFormat),
		Paid:        e.Paid,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDomainExpenseList конвертирует список domain моделей в DTO
func FromDomainExpenseList(expenses []*domain.Expense) *ExpenseListResponse {
	resp := &ExpenseListResponse{Expenses: make([]ExpenseResponse, 0, len(expenses))}
	for _, expense := range expenses {
		if expenseResp := FromDomainExpense(expense); expenseResp != nil {
			resp.Expenses = append(resp.Expenses, *expenseResp)
		}
	}
	return resp
}
