package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/service/reservations"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/calendar/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.reservationsService.DaySchedule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /calendar/days - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/days - Failed to get schedule for date=%s: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/days - Schedule fetched for date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
