package signup

import (
	"errors"
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "этот email уже зарегистрирован"
	msgWeakPassword       = "пароль должен быть не короче 6 символов"
	msgInvalidEmail       = "некорректный email"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.SignUp(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/signup - Email taken: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, auth.ErrWeakPassword):
			h.logger.Warn("POST /auth/signup - Weak password for email=%s", req.Email)
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /auth/signup - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - User registered: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
