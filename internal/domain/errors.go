package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле заявки
	ErrMissingField = errors.New("domain: missing required field")

	// ErrInvalidPeopleCount возвращается, когда число участников не является целым числом > 0
	ErrInvalidPeopleCount = errors.New("domain: people count must be a positive integer")

	// ErrOutsideSessionWindow возвращается, когда время не попадает ни в одно из окон сессий
	ErrOutsideSessionWindow = errors.New("domain: time is outside session windows")

	// ErrCapacityExceeded возвращается, когда заявка превышает дневной лимит участников
	ErrCapacityExceeded = errors.New("domain: daily capacity exceeded")
)

// CapacityError детализирует отказ по лимиту: сколько уже занято, сколько
// запрошено и каким был бы итог. Нужен, чтобы вызывающая сторона могла
// показать точное сообщение.
type CapacityError struct {
	CurrentTotal   int
	Requested      int
	ResultingTotal int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: current=%d, requested=%d, total=%d would exceed capacity %d",
		ErrCapacityExceeded, e.CurrentTotal, e.Requested, e.ResultingTotal, FacilityCapacity)
}

// Unwrap позволяет errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
