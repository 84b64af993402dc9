package create_reservation

import "errors"

// Ошибки правил допуска приходят из domain и пробрасываются без обертки:
// handler различает их через errors.Is и errors.As (*domain.CapacityError).
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_reservation: internal error")
)
