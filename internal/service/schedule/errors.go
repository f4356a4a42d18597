package schedule

import "errors"

var (
	// ErrAccessDenied возвращается, когда расписание меняет не владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректном расписании
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
