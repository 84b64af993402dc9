package get_profile

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/profile/models"
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
