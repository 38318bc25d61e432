package create_reservation

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("create_reservation: professional not found")

	// ErrProfessionalNotBookable возвращается, когда специалист не принимает бронирования
	ErrProfessionalNotBookable = errors.New("create_reservation: professional is not accepting bookings")

	// ErrServiceNotFound возвращается, когда хотя бы одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid booking date")

	// ErrClosedOnDate возвращается, когда специалист не работает в указанную дату
	ErrClosedOnDate = errors.New("create_reservation: closed on this date")

	// ErrInvalidTimeSlot возвращается, когда интервал не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("create_reservation: time slot is outside working hours")

	// ErrTooLateToBook возвращается, когда бронирование на сегодня нарушает буфер
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
