package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/service/hours"
	"github.com/strikearena/SA-ReservationService/internal/service/hours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время открытия должно быть раньше времени закрытия"
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

// Handle PUT /api/v1/admin/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.hoursService.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidTimeFormat):
			h.logger.Warn("PUT /admin/business-hours - Invalid time format: open=%q close=%q",
				req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		case errors.Is(err, hours.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/business-hours - Invalid range: open=%s close=%s",
				req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("PUT /admin/business-hours - Failed to update hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/business-hours - Updated: open=%s close=%s", result.OpenTime, result.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
