package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/dbmetrics"
	"github.com/agendly/booking-service/pkg/psqlbuilder"
)

var expenseColumns = []string{
	"id",
	"business_id",
	"description",
	"amount",
	"expense_date",
	"paid",
	"created_at",
	"updated_at",
}

// Repository репозиторий операционных расходов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый расход
func (r *Repository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("expenses").
		Columns("business_id", "description", "amount", "expense_date", "paid").
		Values(expense.BusinessID, expense.Description, expense.Amount, expense.ExpenseDate, expense.Paid).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&expense.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	expense.CreatedAt = createdAt.Time
	expense.UpdatedAt = updatedAt.Time

	return expense, nil
}

// ListByBusiness возвращает расходы бизнеса за период
// Границы периода опциональны
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64, startDate, endDate *time.Time) ([]*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("expense_date DESC, id DESC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"expense_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"expense_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var expense domain.Expense
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&expense.ID,
			&expense.BusinessID,
			&expense.Description,
			&expense.Amount,
			&expense.ExpenseDate,
			&expense.Paid,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan expense: %v", ErrScanRow, err)
		}

		expense.CreatedAt = createdAt.Time
		expense.UpdatedAt = updatedAt.Time
		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return expenses, nil
}

// SetPaid помечает расход оплаченным или ожидающим оплаты
func (r *Repository) SetPaid(ctx context.Context, id int64, paid bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("expenses").
		Set("paid", paid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
