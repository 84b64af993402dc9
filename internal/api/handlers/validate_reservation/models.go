package validate_reservation

import (
	validateReservation "github.com/strikearena/SA-ReservationService/internal/usecase/validate_reservation"
	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// ValidateReservationRequest HTTP request model (шаг "Проверить" мастера)
type ValidateReservationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Team         string `json:"team"`
	Date         string `json:"date"` // "2026-09-01"
	Time         string `json:"time"` // "09:30"
	PeopleCount  *int   `json:"peopleCount"`
	RentalNeeded *bool  `json:"rentalNeeded"`
}

// ValidateReservationResponse HTTP response model
type ValidateReservationResponse struct {
	Valid          bool   `json:"valid"`
	Session        string `json:"session"`
	CurrentTotal   int    `json:"currentTotal"`
	ResultingTotal int    `json:"resultingTotal"`
	Capacity       int    `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время не парсится здесь: пустое или кривое значение должно дойти до
// правил допуска, чтобы сохранить их порядок проверки.
func (r *ValidateReservationRequest) ToUseCaseRequest(ownerUserID *string) *validateReservation.Request {
	return &validateReservation.Request{
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
func FromUseCaseResponse(resp *validateReservation.Response) *ValidateReservationResponse {
	return &ValidateReservationResponse{
		Valid:          true,
		Session:        resp.Session,
		CurrentTotal:   resp.CurrentTotal,
		ResultingTotal: resp.ResultingTotal,
		Capacity:       resp.Capacity,
	}
}
