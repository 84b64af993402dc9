package domain

import (
	"time"

	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// BusinessHours represents the single global opening-hours record.
// Последняя запись побеждает; вариаций по дням недели нет.
type BusinessHours struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
	UpdatedAt time.Time
}

// DefaultBusinessHours возвращает часы по умолчанию, пока запись не создана
func DefaultBusinessHours() *BusinessHours {
	return &BusinessHours{
		OpenTime:  DefaultOpenTime,
		CloseTime: DefaultCloseTime,
	}
}
