package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotConfirm возвращается, когда бронирование нельзя подтвердить
	ErrCannotConfirm = errors.New("reservation cannot be confirmed")

	// ErrCannotComplete возвращается, когда бронирование нельзя завершить
	ErrCannotComplete = errors.New("reservation cannot be completed")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrCannotPurge возвращается при попытке удалить неотменённое бронирование
	ErrCannotPurge = errors.New("only cancelled reservations can be purged")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
