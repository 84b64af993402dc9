package get_business_hours

import (
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
)

type Handler struct {
	hoursService HoursService
	logger       Logger
}

func NewHandler(hoursService HoursService, logger Logger) *Handler {
	return &Handler{
		hoursService: hoursService,
		logger:       logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.hoursService.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to get hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
