package models

import "github.com/strikearena/SA-ReservationService/internal/domain"

// ProfileResponse данные профиля для префилла формы бронирования.
// Для пользователя без сохраненного профиля поля пустые.
type ProfileResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.UserProfile) *ProfileResponse {
	if p == nil {
		return &ProfileResponse{}
	}

	return &ProfileResponse{
		Name:     p.Name,
		Email:    p.Email,
		TeamName: p.TeamName,
	}
}
