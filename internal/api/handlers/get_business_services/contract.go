package get_business_services

import (
	"context"

	"github.com/agendly/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetBusinessServices(ctx context.Context, businessID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
