package get_profile

import (
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	profileService ProfileService
	logger         Logger
}

func NewHandler(profileService ProfileService, logger Logger) *Handler {
	return &Handler{
		profileService: profileService,
		logger:         logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /profile - No user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /profile - Failed to get profile for user=%s: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /profile - Profile fetched for user=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
