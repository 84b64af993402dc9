package toggle_check_in

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/service/reservations"
)

const msgReservationNotFound = "бронирование не найдено"

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

// Handle PATCH /api/v1/admin/reservations/{id}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.reservationsService.ToggleCheckIn(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/check-in - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("PATCH /admin/reservations/check-in - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/check-in - Toggled: id=%s checkedIn=%v", id, result.CheckedIn)
	handlers.RespondJSON(w, http.StatusOK, result)
}
