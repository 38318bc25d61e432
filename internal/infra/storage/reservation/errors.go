package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// Возвращается и при нуле затронутых строк в update/delete - молчаливый
	// no-op маскирует проблемы прав доступа и существования записи
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
