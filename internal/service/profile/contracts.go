package profile

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
