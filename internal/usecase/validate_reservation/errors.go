package validate_reservation

import "errors"

// Ошибки правил допуска (ErrMissingField, ErrInvalidPeopleCount,
// ErrOutsideSessionWindow, ErrCapacityExceeded) приходят из domain
// и пробрасываются без обертки, чтобы handler видел детали CapacityError.
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("validate_reservation: internal error")
)
