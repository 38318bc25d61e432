package domain

import "time"

// Expense represents an operational outflow of a business on a date
// Used by the metrics aggregation for business-wide net revenue
type Expense struct {
	ID          int64
	BusinessID  int64
	Description string
	Amount      float64
	ExpenseDate time.Time
	Paid        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
