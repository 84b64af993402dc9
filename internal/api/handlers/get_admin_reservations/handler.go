package get_admin_reservations

import (
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/service/reservations/models"
)

type Handler struct {
	reservationsService ReservationsService
	logger              Logger
}

func NewHandler(reservationsService ReservationsService, logger Logger) *Handler {
	return &Handler{
		reservationsService: reservationsService,
		logger:              logger,
	}
}

// Handle GET /api/v1/admin/reservations?search=<term>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get("search")

	result, err := h.reservationsService.AdminList(r.Context(), &models.AdminListRequest{
		SearchTerm: searchTerm,
	})
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - Listed %d reservations, search=%q",
		result.Summary.TotalCount, searchTerm)
	handlers.RespondJSON(w, http.StatusOK, result)
}
