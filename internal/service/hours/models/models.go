package models

import "github.com/strikearena/SA-ReservationService/internal/domain"

// UpdateHoursRequest запрос на изменение часов работы
type UpdateHoursRequest struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// HoursResponse текущие часы работы площадки
type HoursResponse struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// FromDomainHours конвертирует domain модель в DTO
func FromDomainHours(h *domain.BusinessHours) *HoursResponse {
	return &HoursResponse{
		OpenTime:  h.OpenTime.String(),
		CloseTime: h.CloseTime.String(),
	}
}
