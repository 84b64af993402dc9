package create_reservation

import (
	"time"

	createReservation "github.com/strikearena/SA-ReservationService/internal/usecase/create_reservation"
	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model (шаг "Подтвердить" мастера)
type CreateReservationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Team         string `json:"team"`
	Date         string `json:"date"` // "2026-09-01"
	Time         string `json:"time"` // "09:30"
	PeopleCount  *int   `json:"peopleCount"`
	RentalNeeded *bool  `json:"rentalNeeded"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Team         string    `json:"team"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	PeopleCount  int       `json:"peopleCount"`
	RentalNeeded bool      `json:"rentalNeeded"`
	Session      string    `json:"session"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время не парсится здесь: пустое или кривое значение должно дойти до
// правил допуска, чтобы сохранить их порядок проверки.
func (r *CreateReservationRequest) ToUseCaseRequest(ownerUserID *string) *createReservation.Request {
	return &createReservation.Request{
		Name:         r.Name,
		Email:        r.Email,
		Team:         r.Team,
		Date:         r.Date,
		Time:         types.TimeString(r.Time),
		PeopleCount:  r.PeopleCount,
		RentalNeeded: r.RentalNeeded,
		OwnerUserID:  ownerUserID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		Email:        resp.Email,
		Team:         resp.Team,
		Date:         resp.Date,
		Time:         resp.Time.String(),
		PeopleCount:  resp.PeopleCount,
		RentalNeeded: resp.RentalNeeded,
		Session:      resp.Session,
		CreatedAt:    resp.CreatedAt,
	}
}
