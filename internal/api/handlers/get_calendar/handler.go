package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	getCalendar "github.com/strikearena/SA-ReservationService/internal/usecase/get_calendar"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается 1..12"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %q", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar for %d-%d: %v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built for %d-%02d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
