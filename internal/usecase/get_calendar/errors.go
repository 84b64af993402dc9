package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном годе или месяце
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_calendar: internal error")
)
