package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	profileRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/profile"
	"github.com/strikearena/SA-ReservationService/internal/service/profile/models"
)

// Service сервис профилей пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя. Отсутствие профиля — не ошибка:
// новый пользователь получает пустой профиль и заполняет форму вручную.
func (s *Service) Get(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	s.logger.Info("Get: fetching profile for user=%s", userID)

	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Info("Get: no profile for user=%s, returning empty", userID)
			return models.FromDomainProfile(nil), nil
		}
		s.logger.Error("Get: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(p), nil
}

// Remember сохраняет последние данные формы пользователя.
// Вызывается после успешного создания бронирования, последняя запись побеждает.
func (s *Service) Remember(ctx context.Context, p *domain.UserProfile) error {
	s.logger.Info("Remember: saving profile for user=%s", p.UserID)

	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		s.logger.Error("Remember: repository error for user=%s: %v", p.UserID, err)
		return fmt.Errorf("%w: Remember - repository error: %v", ErrInternal, err)
	}

	return nil
}
