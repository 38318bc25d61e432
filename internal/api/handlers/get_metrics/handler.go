package get_metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendly/booking-service/internal/api/handlers"
	"github.com/agendly/booking-service/internal/domain"
	getMetrics "github.com/agendly/booking-service/internal/usecase/get_metrics"
)

const (
	msgInvalidBusinessID     = "некорректный ID бизнеса"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessionalNotFound  = "специалист не найден"
)

type Handler struct {
	useCase GetMetricsUseCase
	logger  Logger
}

func NewHandler(useCase GetMetricsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/metrics
// Query: role, professionalId, startDate, endDate, bucket
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/metrics - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	req := &getMetrics.Request{
		BusinessID: businessID,
		Role:       domain.Role(query.Get("role")),
		Bucket:     getMetrics.Bucket(query.Get("bucket")),
	}
	if req.Bucket == "" {
		req.Bucket = getMetrics.BucketDaily
	}

	if raw := query.Get("professionalId"); raw != "" {
		professionalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/metrics - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &professionalID
	}

	req.StartDate, err = time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/metrics - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req.EndDate, err = time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/metrics - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMetrics.ErrProfessionalNotFound):
			h.logger.Warn("GET /businesses/{id}/metrics - Professional not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getMetrics.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/metrics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/metrics - Failed to get metrics: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/metrics - Metrics calculated: business_id=%d, role=%s",
		businessID, req.Role)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
