package validate_reservation

import (
	"context"
	"fmt"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// UseCase use case проверки заявки без сохранения (шаг "Проверить" мастера).
// Результат не резервирует место: окончательная проверка повторяется
// при создании внутри сериализуемой транзакции.
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

// Execute выполняет проверку заявки по правилам допуска
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateReservation: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация формата входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования на дату (без блокировки — это только предпросмотр)
	existing, err := uc.reservationRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("ValidateReservation: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 3. Применяем правила допуска
	candidate, err := domain.Admit(toAdmissionRequest(req), existing)
	if err != nil {
		uc.logger.Warn("ValidateReservation: admission rejected for date=%s: %v", req.Date, err)
		return nil, err
	}

	currentTotal := domain.DailyTotalPeople(existing)

	uc.logger.Info("ValidateReservation: ok, date=%s session=%s total=%d+%d",
		req.Date, candidate.Session, currentTotal, candidate.PeopleCount)

	return &Response{
		Session:        string(candidate.Session),
		CurrentTotal:   currentTotal,
		ResultingTotal: currentTotal + candidate.PeopleCount,
		Capacity:       domain.FacilityCapacity,
	}, nil
}

func toAdmissionRequest(req *Request) domain.AdmissionRequest {
	return domain.AdmissionRequest{
		Name:         req.Name,
		Email:        req.Email,
		Team:         req.Team,
		Date:         req.Date,
		Time:         req.Time,
		PeopleCount:  req.PeopleCount,
		RentalNeeded: req.RentalNeeded,
		OwnerUserID:  req.OwnerUserID,
	}
}
