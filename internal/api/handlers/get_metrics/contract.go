package get_metrics

import (
	"context"

	getMetrics "github.com/agendly/booking-service/internal/usecase/get_metrics"
)

type GetMetricsUseCase interface {
	Execute(ctx context.Context, req *getMetrics.Request) (*getMetrics.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
