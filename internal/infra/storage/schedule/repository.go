package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendly/booking-service/internal/domain"
	"github.com/agendly/booking-service/pkg/dbmetrics"
	"github.com/agendly/booking-service/pkg/psqlbuilder"
	"github.com/agendly/booking-service/pkg/types"
)

// Repository репозиторий недельных расписаний
// Расписание бизнеса и персональные override специалистов хранятся
// построчно: одна строка - один день недели. Отсутствие строки означает,
// что источник не определяет этот день
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessWeek возвращает недельное расписание бизнеса
// Пустая map - валидный результат (расписание не задано, все дни закрыты)
func (r *Repository) GetBusinessWeek(ctx context.Context, businessID int64) (domain.WeeklySchedule, error) {
	return r.loadWeek(ctx, "business_hours", "business_id", businessID)
}

// GetProfessionalWeek возвращает персональное расписание специалиста
// Пустая map означает отсутствие override: расписание бизнеса действует
// для всех дней недели
func (r *Repository) GetProfessionalWeek(ctx context.Context, professionalID int64) (domain.WeeklySchedule, error) {
	return r.loadWeek(ctx, "professional_hours", "professional_id", professionalID)
}

// ReplaceBusinessWeek полностью заменяет недельное расписание бизнеса
func (r *Repository) ReplaceBusinessWeek(ctx context.Context, businessID int64, week domain.WeeklySchedule) error {
	return r.replaceWeek(ctx, "business_hours", "business_id", businessID, week)
}

// ReplaceProfessionalWeek полностью заменяет персональное расписание специалиста
// Пустая map удаляет override целиком
func (r *Repository) ReplaceProfessionalWeek(ctx context.Context, professionalID int64, week domain.WeeklySchedule) error {
	return r.replaceWeek(ctx, "professional_hours", "professional_id", professionalID, week)
}

func (r *Repository) loadWeek(ctx context.Context, table, ownerColumn string, ownerID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "closed", "open_time", "close_time").
		From(table).
		Where(squirrel.Eq{ownerColumn: ownerID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeeklySchedule)
	for rows.Next() {
		var weekday int
		var closed bool
		var openTime, closeTime sql.NullString

		if err := rows.Scan(&weekday, &closed, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: loadWeek - scan day: %v", ErrScanRow, err)
		}

		window := domain.DayWindow{Closed: closed}
		if !closed {
			window.Open, err = parseDBTime(openTime.String)
			if err != nil {
				return nil, fmt.Errorf("%w: loadWeek - parse open time: %v", ErrScanRow, err)
			}
			window.Close, err = parseDBTime(closeTime.String)
			if err != nil {
				return nil, fmt.Errorf("%w: loadWeek - parse close time: %v", ErrScanRow, err)
			}
		}

		week[time.Weekday(weekday)] = window
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

func (r *Repository) replaceWeek(ctx context.Context, table, ownerColumn string, ownerID int64, week domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{ownerColumn: ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: replaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(table).
		Columns(ownerColumn, "weekday", "closed", "open_time", "close_time")

	// Вставляем дни в фиксированном порядке для детерминизма
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		window, ok := week[weekday]
		if !ok {
			continue
		}

		var openTime, closeTime interface{}
		if !window.Closed {
			openTime = window.Open
			closeTime = window.Close
		}

		insertBuilder = insertBuilder.Values(ownerID, int(weekday), window.Closed, openTime, closeTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: replaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func parseDBTime(s string) (types.TimeString, error) {
	// Postgres TIME приходит как "10:00:00" - отбрасываем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	return types.NewTimeStringFromString(s)
}
