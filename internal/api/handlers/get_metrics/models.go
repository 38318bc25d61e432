package get_metrics

import (
	"github.com/agendly/booking-service/internal/domain"
	getMetrics "github.com/agendly/booking-service/internal/usecase/get_metrics"
)

// MetricsResponse HTTP response model
type MetricsResponse struct {
	BusinessID     int64  `json:"businessId"`
	Role           string `json:"role"`
	ProfessionalID *int64 `json:"professionalId,omitempty"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`

	GrossRevenue     float64 `json:"grossRevenue"`
	NetRevenue       float64 `json:"netRevenue"`
	AverageTicket    float64 `json:"averageTicket"`
	CompletedCount   int     `json:"completedCount"`
	CanceledCount    int     `json:"canceledCount"`
	CancellationRate float64 `json:"cancellationRate"`
	AttendanceRate   float64 `json:"attendanceRate"`

	Series      []SeriesPoint         `json:"series"`
	TopServices []ServiceCount        `json:"topServices"`
	Ranking     []ProfessionalRevenue `json:"ranking,omitempty"`
}

// SeriesPoint точка временного ряда в ответе
type SeriesPoint struct {
	PeriodStart string  `json:"periodStart"`
	Gross       float64 `json:"gross"`
	Count       int     `json:"count"`
}

// ServiceCount частота услуги в ответе
type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProfessionalRevenue выручка специалиста в ответе
type ProfessionalRevenue struct {
	ProfessionalID int64   `json:"professionalId"`
	Name           string  `json:"name"`
	Gross          float64 `json:"gross"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMetrics.Response) *MetricsResponse {
	out := &MetricsResponse{
		BusinessID:       resp.BusinessID,
		Role:             resp.Role,
		ProfessionalID:   resp.ProfessionalID,
		StartDate:        resp.StartDate.Format(domain.DateFormat),
		EndDate:          resp.EndDate.Format(domain.DateFormat),
		GrossRevenue:     resp.GrossRevenue,
		NetRevenue:       resp.NetRevenue,
		AverageTicket:    resp.AverageTicket,
		CompletedCount:   resp.CompletedCount,
		CanceledCount:    resp.CanceledCount,
		CancellationRate: resp.CancellationRate,
		AttendanceRate:   resp.AttendanceRate,
		Series:           make([]SeriesPoint, 0, len(resp.Series)),
		TopServices:      make([]ServiceCount, 0, len(resp.TopServices)),
	}

	for _, point := range resp.Series {
		out.Series = append(out.Series, SeriesPoint{
			PeriodStart: point.PeriodStart.Format(domain.DateFormat),
			Gross:       point.Gross,
			Count:       point.Count,
		})
	}

	for _, svc := range resp.TopServices {
		out.TopServices = append(out.TopServices, ServiceCount{Name: svc.Name, Count: svc.Count})
	}

	for _, p := range resp.Ranking {
		out.Ranking = append(out.Ranking, ProfessionalRevenue{
			ProfessionalID: p.ProfessionalID,
			Name:           p.Name,
			Gross:          p.Gross,
		})
	}

	return out
}
