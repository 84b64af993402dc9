package login

import "github.com/strikearena/SA-ReservationService/internal/service/auth/models"

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SignInRequest) ToServiceRequest() *models.SignInRequest {
	return &models.SignInRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token:  resp.Token,
		UserID: resp.UserID,
		Email:  resp.Email,
		Role:   resp.Role,
	}
}
