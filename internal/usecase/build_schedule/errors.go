package build_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (до каких-либо сетевых вызовов)
	ErrInvalidInput = errors.New("build_schedule: invalid input data")

	// ErrGuestCreationFailed возвращается, когда не удалось создать
	// гостевую запись - без гостя строить расписание не на кого
	ErrGuestCreationFailed = errors.New("build_schedule: failed to create guest")

	// ErrScheduleUnavailable возвращается, когда НИ ОДИН день окна
	// не удалось получить. Частичные сбои ошибкой не считаются:
	// расписание возвращается с маркерами по дням
	ErrScheduleUnavailable = errors.New("build_schedule: failed to fetch every day of the window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_schedule: internal error")
)
