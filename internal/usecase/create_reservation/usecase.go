package create_reservation

import (
	"context"
	"fmt"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	profileRepo     ProfileRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	profileRepo ProfileRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		profileRepo:     profileRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка лимита и запись идут в одной сериализуемой транзакции: список
// на дату читается с блокировкой, поэтому две конкурирующие заявки не могут
// вдвоем пройти проверку и переполнить день.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация формата входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Reservation

	// 2. Правила допуска и запись — в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирования на дату с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations for date=%s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 2.2. Правила допуска
		candidate, err := domain.Admit(toAdmissionRequest(req), existing)
		if err != nil {
			uc.logger.Warn("CreateReservation: admission rejected for date=%s: %v", req.Date, err)
			return err
		}

		// 2.3. Сохраняем бронирование
		created, err = uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created id=%s date=%s session=%s people=%d",
		created.ID, created.Date, created.Session, created.PeopleCount)

	// 3. Запоминаем данные формы для префилла. Бронирование уже создано,
	// поэтому ошибка профиля не отменяет результат.
	if req.OwnerUserID != nil {
		profile := &domain.UserProfile{
			UserID:   *req.OwnerUserID,
			Name:     created.Name,
			Email:    created.Email,
			TeamName: created.Team,
		}
		if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
			uc.logger.Error("CreateReservation: failed to save profile for user=%s: %v", *req.OwnerUserID, err)
		}
	}

	return toResponse(created), nil
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

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Team:         r.Team,
		Date:         r.Date,
		Time:         r.Time,
		PeopleCount:  r.PeopleCount,
		RentalNeeded: r.RentalNeeded,
		Session:      string(r.Session),
		CreatedAt:    r.CreatedAt,
	}
}
