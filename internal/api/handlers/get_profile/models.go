package get_profile

import "github.com/strikearena/SA-ReservationService/internal/service/profile/models"

// ProfileResponse HTTP response model: данные для префилла формы бронирования
type ProfileResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfileResponse) *ProfileResponse {
	return &ProfileResponse{
		Name:     resp.Name,
		Email:    resp.Email,
		TeamName: resp.TeamName,
	}
}
