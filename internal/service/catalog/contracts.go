package catalog

import (
	"context"

	"github.com/agendly/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	Create(ctx context.Context, service *domain.CatalogService) (*domain.CatalogService, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*domain.CatalogService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
