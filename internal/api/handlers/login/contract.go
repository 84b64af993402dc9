package login

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/auth/models"
)

type AuthService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
