package get_metrics

import (
	"time"

	"github.com/agendly/booking-service/internal/domain"
)

// Bucket гранулярность временного ряда
type Bucket string

const (
	BucketDaily  Bucket = "daily"
	BucketWeekly Bucket = "weekly"
)

// IsValid возвращает true для известного значения гранулярности
func (b Bucket) IsValid() bool {
	return b == BucketDaily || b == BucketWeekly
}

// Request модель запроса на получение метрик
type Request struct {
	BusinessID     int64       // ID бизнеса
	Role           domain.Role // Роль запрашивающего: owner или professional
	ProfessionalID *int64      // Фильтр по специалисту (обязателен для роли professional)
	StartDate      time.Time   // Начало периода (включительно)
	EndDate        time.Time   // Конец периода (включительно)
	Bucket         Bucket      // Гранулярность временного ряда
}

// Response модель ответа с метриками
type Response struct {
	BusinessID     int64     // ID бизнеса
	Role           string    // Роль, для которой считались метрики
	ProfessionalID *int64    // Фильтр по специалисту, если задан
	StartDate      time.Time // Начало периода
	EndDate        time.Time // Конец периода

	GrossRevenue     float64 // Валовая выручка по завершённым бронированиям
	NetRevenue       float64 // Чистая выручка по формуле роли
	AverageTicket    float64 // Средний чек (0 при отсутствии завершённых)
	CompletedCount   int     // Количество завершённых бронирований
	CanceledCount    int     // Количество отменённых бронирований
	CancellationRate float64 // Доля отмен: canceled / (completed + canceled)
	AttendanceRate   float64 // Доля посещений: completed / (completed + canceled)

	Series      []SeriesPoint         // Временной ряд выручки
	TopServices []ServiceCount        // Самые востребованные услуги
	Ranking     []ProfessionalRevenue // Рейтинг специалистов (только owner без фильтра)
}

// SeriesPoint точка временного ряда
type SeriesPoint struct {
	PeriodStart time.Time // Начало периода (день или понедельник недели)
	Gross       float64   // Валовая выручка за период
	Count       int       // Количество завершённых бронирований за период
}

// ServiceCount частота услуги среди завершённых бронирований
type ServiceCount struct {
	Name  string // Название услуги
	Count int    // Количество вхождений
}

// ProfessionalRevenue выручка специалиста за период
type ProfessionalRevenue struct {
	ProfessionalID int64   // ID специалиста
	Name           string  // Имя специалиста
	Gross          float64 // Валовая выручка
}
