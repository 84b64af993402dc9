package reservations

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	reservationRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/reservation"
	"github.com/strikearena/SA-ReservationService/internal/service/reservations/models"
)

// dateRe формат даты YYYY-MM-DD
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Service сервис просмотра и администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// AdminList возвращает бронирования для админской панели: фильтрация поиском,
// итоги по отфильтрованному списку и группировка по датам.
func (s *Service) AdminList(ctx context.Context, req *models.AdminListRequest) (*models.AdminListResponse, error) {
	s.logger.Info("AdminList: fetching reservations, search=%q", req.SearchTerm)

	all, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("AdminList: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminList - repository error: %v", ErrInternal, err)
	}

	filtered := domain.FilterBySearchTerm(all, req.SearchTerm)
	summary := domain.Summarize(filtered)
	groups := domain.GroupByDateSorted(filtered)

	s.logger.Info("AdminList: %d of %d reservations match", len(filtered), len(all))

	return &models.AdminListResponse{
		Summary: models.FromDomainSummary(summary),
		Groups:  models.FromDomainGroups(groups),
	}, nil
}

// DaySchedule возвращает расписание одного дня, разбитое по сессиям
func (s *Service) DaySchedule(ctx context.Context, date string) (*models.DayScheduleResponse, error) {
	s.logger.Info("DaySchedule: fetching schedule for date=%s", date)

	if !dateRe.MatchString(date) {
		s.logger.Warn("DaySchedule: invalid date=%q", date)
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	list, err := s.reservationRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("DaySchedule: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: DaySchedule - repository error: %v", ErrInternal, err)
	}

	split := domain.SessionSplit(list)
	total := domain.DailyTotalPeople(list)

	return &models.DayScheduleResponse{
		Date:        date,
		TotalPeople: total,
		Capacity:    domain.FacilityCapacity,
		Band:        string(domain.BandForTotal(total)),
		Morning:     models.FromDomainReservationList(split.Morning),
		Afternoon:   models.FromDomainReservationList(split.Afternoon),
		Other:       models.FromDomainReservationList(split.Other),
	}, nil
}

// ToggleCheckIn переключает флаг чек-ина бронирования и возвращает новое значение
func (s *Service) ToggleCheckIn(ctx context.Context, id string) (*models.CheckInResponse, error) {
	s.logger.Info("ToggleCheckIn: toggling reservation id=%s", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ToggleCheckIn: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ToggleCheckIn: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleCheckIn - repository error: %v", ErrInternal, err)
	}

	newState := !reservation.CheckedIn

	if err := s.reservationRepo.SetCheckedIn(ctx, id, newState); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ToggleCheckIn: reservation id=%s disappeared during update", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ToggleCheckIn: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleCheckIn - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleCheckIn: reservation id=%s checkedIn=%v", id, newState)

	return &models.CheckInResponse{ID: id, CheckedIn: newState}, nil
}

// Delete удаляет бронирование. Операция необратима, место на дату
// освобождается сразу.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}
