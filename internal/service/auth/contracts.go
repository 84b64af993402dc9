package auth

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	Create(ctx context.Context, account *domain.UserAccount) (*domain.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	GetByID(ctx context.Context, id string) (*domain.UserAccount, error)
}

// TokenManager интерфейс для выпуска и разбора JWT токенов
type TokenManager interface {
	Create(userID string, role string, email string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
