package get_admin_reservations

import (
	"context"

	"github.com/strikearena/SA-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	AdminList(ctx context.Context, req *models.AdminListRequest) (*models.AdminListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
