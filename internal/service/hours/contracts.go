package hours

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// HoursRepository интерфейс репозитория часов работы
type HoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
	Upsert(ctx context.Context, hours *domain.BusinessHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
