package promotions

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда инвойс не найден
	ErrInvoiceNotFound = errors.New("promotions: invoice not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promotions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promotions: internal error")
)
