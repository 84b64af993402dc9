package hours

import "errors"

var (
	// ErrInvalidTimeFormat возвращается при времени не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidTimeRange возвращается, когда открытие не раньше закрытия
	ErrInvalidTimeRange = errors.New("open time must be before close time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hours service: internal error")
)
