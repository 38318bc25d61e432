package create_reservation

import (
	"time"

	"github.com/agendly/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID     int64            // ID бизнеса
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID специалиста
	ServiceIDs     []int64          // Услуги из каталога (минимум одна)
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	Confirmed      bool             // Создать сразу подтверждённым вместо pending
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Reference       string           // Публичный номер бронирования (uuid)
	BusinessID      int64            // ID бизнеса
	ClientID        int64            // ID клиента
	ProfessionalID  *int64           // ID специалиста
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные
	ServiceNames string  // Названия услуг через ", "
	Value        float64 // Суммарная стоимость

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
