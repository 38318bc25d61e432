package reschedule_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrNotReschedulable возвращается, когда статус не допускает перенос
	ErrNotReschedulable = errors.New("reschedule_reservation: reservation cannot be rescheduled")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("reschedule_reservation: invalid booking date")

	// ErrClosedOnDate возвращается, когда специалист не работает в указанную дату
	ErrClosedOnDate = errors.New("reschedule_reservation: closed on this date")

	// ErrInvalidTimeSlot возвращается, когда интервал не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("reschedule_reservation: time slot is outside working hours")

	// ErrTooLateToBook возвращается, когда перенос на сегодня нарушает буфер
	ErrTooLateToBook = errors.New("reschedule_reservation: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("reschedule_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
