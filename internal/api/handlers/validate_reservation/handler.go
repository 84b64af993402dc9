package validate_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
	"github.com/strikearena/SA-ReservationService/internal/api/middleware"
	"github.com/strikearena/SA-ReservationService/internal/domain"
	validateReservation "github.com/strikearena/SA-ReservationService/internal/usecase/validate_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingField       = "заполните все обязательные поля"
	msgInvalidPeople      = "число участников должно быть целым числом больше нуля"
	msgOutsideWindow      = "время должно попадать в окно 09:00-11:00 или 13:00-16:00"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase ValidateReservationUseCase
	logger  Logger
}

func NewHandler(useCase ValidateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var ownerUserID *string
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		ownerUserID = &userID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerUserID))
	if err != nil {
		respondAdmissionError(w, h.logger, "POST /reservations/validate", &req, err)
		return
	}

	h.logger.Info("POST /reservations/validate - Valid: date=%s session=%s", req.Date, result.Session)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondAdmissionError транслирует ошибки правил допуска в HTTP статусы
func respondAdmissionError(w http.ResponseWriter, logger Logger, route string, req *ValidateReservationRequest, err error) {
	var capErr *domain.CapacityError

	switch {
	case errors.Is(err, domain.ErrMissingField):
		logger.Warn("%s - Missing field: date=%s", route, req.Date)
		handlers.RespondBadRequest(w, msgMissingField)

	case errors.Is(err, domain.ErrInvalidPeopleCount):
		logger.Warn("%s - Invalid people count: date=%s", route, req.Date)
		handlers.RespondBadRequest(w, msgInvalidPeople)

	case errors.Is(err, domain.ErrOutsideSessionWindow):
		logger.Warn("%s - Time outside session windows: date=%s time=%s", route, req.Date, req.Time)
		handlers.RespondBadRequest(w, msgOutsideWindow)

	case errors.As(err, &capErr):
		logger.Warn("%s - Capacity exceeded: date=%s current=%d requested=%d",
			route, req.Date, capErr.CurrentTotal, capErr.Requested)
		handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(
			"превышен дневной лимит %d человек: занято %d, запрошено %d",
			domain.FacilityCapacity, capErr.CurrentTotal, capErr.Requested))

	case errors.Is(err, validateReservation.ErrInvalidInput):
		logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	default:
		logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
