package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	hoursRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/hours"
	"github.com/strikearena/SA-ReservationService/internal/service/hours/models"
	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// Service сервис часов работы площадки
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса часов работы
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// Get возвращает текущие часы работы.
// Пока администратор ничего не сохранил, действуют часы по умолчанию 09:00-17:00.
func (s *Service) Get(ctx context.Context) (*models.HoursResponse, error) {
	h, err := s.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Info("Get: no stored hours, using defaults")
			return models.FromDomainHours(domain.DefaultBusinessHours()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(h), nil
}

// Update сохраняет новые часы работы
func (s *Service) Update(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("Update: updating business hours open=%s close=%s", req.OpenTime, req.CloseTime)

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		s.logger.Warn("Update: invalid open time=%q", req.OpenTime)
		return nil, fmt.Errorf("%w: open time %q", ErrInvalidTimeFormat, req.OpenTime)
	}

	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		s.logger.Warn("Update: invalid close time=%q", req.CloseTime)
		return nil, fmt.Errorf("%w: close time %q", ErrInvalidTimeFormat, req.CloseTime)
	}

	if !openTime.IsBefore(closeTime) {
		s.logger.Warn("Update: invalid range open=%s close=%s", openTime, closeTime)
		return nil, ErrInvalidTimeRange
	}

	h := &domain.BusinessHours{
		OpenTime:  openTime,
		CloseTime: closeTime,
	}

	if err := s.hoursRepo.Upsert(ctx, h); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business hours saved open=%s close=%s", openTime, closeTime)

	return models.FromDomainHours(h), nil
}
