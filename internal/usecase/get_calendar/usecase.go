package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// UseCase use case календаря загруженности на месяц
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает агрегат на каждый день месяца: суммарное число людей
// и полосу загруженности для раскраски календаря.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: year=%d, month=%d", req.Year, req.Month)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	from := firstDay.Format(domain.DateFormat)
	to := lastDay.Format(domain.DateFormat)

	reservations, err := uc.reservationRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: repository error for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	byDate := domain.ByDate(reservations)

	days := make([]DayAggregate, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		total := domain.DailyTotalPeople(byDate[date])
		days = append(days, DayAggregate{
			Date:        date,
			TotalPeople: total,
			Band:        string(domain.BandForTotal(total)),
		})
	}

	uc.logger.Info("GetCalendar: %d reservations across %s..%s", len(reservations), from, to)

	return &Response{
		Year:     req.Year,
		Month:    req.Month,
		Capacity: domain.FacilityCapacity,
		Days:     days,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be 1..12, got %d", ErrInvalidInput, req.Month)
	}
	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year out of range: %d", ErrInvalidInput, req.Year)
	}
	return nil
}
