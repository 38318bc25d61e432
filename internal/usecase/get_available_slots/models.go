package get_available_slots

import (
	"time"

	"github.com/agendly/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID      int64     // ID бизнеса
	ProfessionalID  int64     // ID специалиста
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Суммарная длительность запрошенных услуг
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time          // Дата, на которую запрашивались слоты
	BusinessID     int64              // ID бизнеса
	ProfessionalID int64              // ID специалиста
	Slots          []types.TimeString // Доступные времена начала
}
