package models

import (
	"time"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

// Request модели

// AdminListRequest запрос админского списка бронирований
type AdminListRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Team         string    `json:"team,omitempty"`
	Date         string    `json:"date"` // "2026-08-30"
	Time         string    `json:"time"` // "09:30"
	PeopleCount  int       `json:"peopleCount"`
	RentalNeeded bool      `json:"rentalNeeded"`
	Session      string    `json:"session,omitempty"`
	CheckedIn    bool      `json:"checkedIn"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SummaryResponse итоги по отфильтрованному списку
type SummaryResponse struct {
	TotalCount     int `json:"totalCount"`
	CheckedInCount int `json:"checkedInCount"`
	TotalPeople    int `json:"totalPeople"`
}

// DateGroupResponse бронирования одной даты
type DateGroupResponse struct {
	Date         string                `json:"date"`
	Reservations []ReservationResponse `json:"reservations"`
}

// AdminListResponse ответ админского списка: итоги и группы по датам
type AdminListResponse struct {
	Summary SummaryResponse     `json:"summary"`
	Groups  []DateGroupResponse `json:"groups"`
}

// DayScheduleResponse расписание одного дня, разбитое по сессиям
type DayScheduleResponse struct {
	Date        string                `json:"date"`
	TotalPeople int                   `json:"totalPeople"`
	Capacity    int                   `json:"capacity"`
	Band        string                `json:"band"`
	Morning     []ReservationResponse `json:"morning"`
	Afternoon   []ReservationResponse `json:"afternoon"`
	Other       []ReservationResponse `json:"other"`
}

// CheckInResponse результат переключения чек-ина
type CheckInResponse struct {
	ID        string `json:"id"`
	CheckedIn bool   `json:"checkedIn"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Team:         r.Team,
		Date:         r.Date,
		Time:         r.Time.String(),
		PeopleCount:  r.PeopleCount,
		RentalNeeded: r.RentalNeeded,
		Session:      string(r.Session),
		CheckedIn:    r.CheckedIn,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}

// FromDomainSummary конвертирует итоги в DTO
func FromDomainSummary(s domain.AdminSummary) SummaryResponse {
	return SummaryResponse{
		TotalCount:     s.TotalCount,
		CheckedInCount: s.CheckedInCount,
		TotalPeople:    s.TotalPeople,
	}
}

// FromDomainGroups конвертирует группы по датам в DTO
func FromDomainGroups(groups []domain.DateGroup) []DateGroupResponse {
	result := make([]DateGroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, DateGroupResponse{
			Date:         g.Date,
			Reservations: FromDomainReservationList(g.Reservations),
		})
	}
	return result
}
