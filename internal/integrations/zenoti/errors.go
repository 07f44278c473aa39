package zenoti

import "errors"

var (
	// ErrCenterNotFound возвращается, когда центр не найден в Zenoti
	ErrCenterNotFound = errors.New("zenoti client: center not found")

	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("zenoti client: category not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("zenoti client: service not found")

	// ErrInvoiceNotFound возвращается, когда инвойс не найден
	ErrInvoiceNotFound = errors.New("zenoti client: invoice not found")

	// ErrSlotUnavailable возвращается, когда выбранный слот уже занят
	// (проигранная гонка за слот - не транспортная ошибка)
	ErrSlotUnavailable = errors.New("zenoti client: slot is no longer available")

	// ErrPromoNotApplicable возвращается, когда Zenoti отклонил промокод
	// (невалидный/просроченный код). Вызывающая сторона трактует это как
	// валидный результат "скидка не применена", а не как сбой
	ErrPromoNotApplicable = errors.New("zenoti client: promo code not applicable")

	// ErrInternal возвращается при транспортных ошибках клиента
	ErrInternal = errors.New("zenoti client: internal error")

	// ErrInvalidResponse возвращается при неожиданном статус-коде или
	// некорректном теле ответа
	ErrInvalidResponse = errors.New("zenoti client: invalid response")
)
