package reservations

import "errors"

var (
	// ErrSlotUnavailable возвращается, когда выбранный слот уже занят
	// (гонка за слот проиграна другому клиенту)
	ErrSlotUnavailable = errors.New("reservations: slot is no longer available")

	// ErrInvoiceNotFound возвращается, когда инвойс не найден
	ErrInvoiceNotFound = errors.New("reservations: invoice not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
