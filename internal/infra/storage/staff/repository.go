package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/dbmetrics"
	"github.com/agendly/booking-service/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"business_id",
	"name",
	"commission_rate",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий специалистов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает специалиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var professional domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&professional.ID,
		&professional.BusinessID,
		&professional.Name,
		&professional.CommissionRate,
		&professional.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	professional.CreatedAt = createdAt.Time
	professional.UpdatedAt = updatedAt.Time

	return &professional, nil
}

// ListByBusiness возвращает всех специалистов бизнеса
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		var professional domain.Professional
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&professional.ID,
			&professional.BusinessID,
			&professional.Name,
			&professional.CommissionRate,
			&professional.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan professional: %v", ErrScanRow, err)
		}

		professional.CreatedAt = createdAt.Time
		professional.UpdatedAt = updatedAt.Time
		professionals = append(professionals, &professional)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}
