package domain

import (
	"time"

	"github.com/agendly/booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCanceled  ReservationStatus = "canceled"
)

// Reservation represents a client booking for one or more services
// with a professional on a specific date and time
type Reservation struct {
	ID             int64
	Reference      string // публичный номер бронирования (uuid)
	BusinessID     int64
	ClientID       int64
	ProfessionalID *int64 // nil = "любой специалист"
	BookingDate    time.Time
	StartTime      types.TimeString
	DurationMinutes int
	Status         ReservationStatus

	// Denormalized data for history
	ServiceNames string // названия услуг, соединённые через ServiceNameSeparator
	Value        float64 // суммарная стоимость, копируется при создании

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCanceled
}

// CanBeConfirmed returns true if the reservation can be confirmed
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the reservation can be moved to another slot
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCompleted returns true if the reservation can be marked as completed
func (r *Reservation) CanBeCompleted() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBePurged returns true if the reservation can be hard-deleted
// Only cancelled reservations are purgeable
func (r *Reservation) CanBePurged() bool {
	return r.Status == StatusCanceled
}

// IsCompleted returns true if the reservation is completed
func (r *Reservation) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCanceled
}

// BusinessReservationsFilter фильтр для получения бронирований бизнеса
type BusinessReservationsFilter struct {
	BusinessID      int64              // Обязательный параметр
	ProfessionalID  *int64             // Фильтр по специалисту (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
