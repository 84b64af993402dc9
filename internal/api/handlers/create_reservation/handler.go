package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/api/middleware"
	"github.com/strikearena/SA-ReservationService/internal/domain"
	createReservation "github.com/strikearena/SA-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingField       = "заполните все обязательные поля"
	msgInvalidPeople      = "число участников должно быть целым числом больше нуля"
	msgOutsideWindow      = "время должно попадать в окно 09:00-11:00 или 13:00-16:00"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var ownerUserID *string
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		ownerUserID = &userID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerUserID))
	if err != nil {
		var capErr *domain.CapacityError

		switch {
		case errors.Is(err, domain.ErrMissingField):
			h.logger.Warn("POST /reservations - Missing field: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, domain.ErrInvalidPeopleCount):
			h.logger.Warn("POST /reservations - Invalid people count: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidPeople)

		case errors.Is(err, domain.ErrOutsideSessionWindow):
			h.logger.Warn("POST /reservations - Time outside session windows: date=%s time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.As(err, &capErr):
			h.logger.Warn("POST /reservations - Capacity exceeded: date=%s current=%d requested=%d",
				req.Date, capErr.CurrentTotal, capErr.Requested)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(
				"превышен дневной лимит %d человек: занято %d, запрошено %d",
				domain.FacilityCapacity, capErr.CurrentTotal, capErr.Requested))

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s date=%s session=%s",
		result.ID, result.Date, result.Session)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
