package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/dbmetrics"
	"github.com/agendly/booking-service/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"business_id",
	"name",
	"duration_minutes",
	"price",
	"category",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, service *domain.CatalogService) (*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("business_id", "name", "duration_minutes", "price", "category").
		Values(service.BusinessID, service.Name, service.DurationMinutes, service.Price, service.Category).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// GetByIDs возвращает услуги бизнеса по списку ID
// Если хотя бы одна услуга не найдена или принадлежит другому бизнесу,
// возвращается ErrServiceNotFound
func (r *Repository) GetByIDs(ctx context.Context, businessID int64, ids []int64) ([]*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := scanServices(rows)
	if err != nil {
		return nil, err
	}

	if len(services) != len(ids) {
		return nil, ErrServiceNotFound
	}

	return services, nil
}

// ListByBusiness возвращает все услуги бизнеса
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("category ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

func scanServices(rows *sql.Rows) ([]*domain.CatalogService, error) {
	services := make([]*domain.CatalogService, 0)

	for rows.Next() {
		var service domain.CatalogService
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.BusinessID,
			&service.Name,
			&service.DurationMinutes,
			&service.Price,
			&service.Category,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan service: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		service.UpdatedAt = updatedAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
