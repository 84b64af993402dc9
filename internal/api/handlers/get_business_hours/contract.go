package get_business_hours

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/hours/models"
)

type HoursService interface {
	Get(ctx context.Context) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
