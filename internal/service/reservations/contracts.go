package reservations

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
	SetCheckedIn(ctx context.Context, id string, checkedIn bool) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
