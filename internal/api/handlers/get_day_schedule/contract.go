package get_day_schedule

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	DaySchedule(ctx context.Context, date string) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
