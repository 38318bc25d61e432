package domain

// Slot generation constants
const (
	// SlotGranularityMinutes шаг между кандидатами времени начала
	SlotGranularityMinutes = 30

	// SameDayNoticeMinutes буфер от текущего времени для бронирований на сегодня
	SameDayNoticeMinutes = 10

	// MinReservationDurationMinutes минимальная длительность бронирования
	// Используется как дефолт, если длительность не указана
	MinReservationDurationMinutes = 30
)

// Metrics constants
const (
	// TopServicesLimit размер выборки самых популярных услуг
	TopServicesLimit = 5
)

// ServiceNameSeparator разделитель названий услуг в денормализованной метке
const ServiceNameSeparator = ", "

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих временной слот
// Используется при подсчёте занятых интервалов
var InactiveStatuses = []ReservationStatus{
	StatusCanceled,
}

// ActiveStatuses список статусов, занимающих временной слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
