package expenses

import "errors"

var (
	// ErrExpenseNotFound возвращается, когда расход не найден
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("expenses service: internal error")
)
