package delete_reservation

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

// Handle DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.reservationsService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("DELETE /admin/reservations - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations - Deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
