package models

// Request модели

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// AuthResponse ответ с токеном и данными пользователя
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
