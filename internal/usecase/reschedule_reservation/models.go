package reschedule_reservation

import (
	"time"

	"github.com/agendly/booking-service/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID int64            // ID бронирования
	Date          time.Time        // Новая дата (без времени)
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID              int64            // ID бронирования
	Reference       string           // Публичный номер бронирования
	BusinessID      int64            // ID бизнеса
	ClientID        int64            // ID клиента
	ProfessionalID  *int64           // ID специалиста
	BookingDate     time.Time        // Новая дата бронирования
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус (после переноса всегда confirmed)
	ServiceNames    string           // Названия услуг
	Value           float64          // Суммарная стоимость
}
