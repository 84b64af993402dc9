package toggle_check_in

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	ToggleCheckIn(ctx context.Context, id string) (*models.CheckInResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
