package validate_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	validateReservation "github.com/strikearena/SA-ReservationService/internal/usecase/validate_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *validateReservation.Response
	err  error
	got  *validateReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *validateReservation.Request) (*validateReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc ValidateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/validate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	validBody := `{"name":"Иван","email":"ivan@example.com","team":"Strike Team","date":"2026-09-01","time":"09:30","peopleCount":5,"rentalNeeded":true}`

	t.Run("успешная проверка", func(t *testing.T) {
		uc := &fakeUseCase{resp: &validateReservation.Response{
			Session:        "morning",
			CurrentTotal:   10,
			ResultingTotal: 15,
			Capacity:       domain.FacilityCapacity,
		}}

		rec := doRequest(t, uc, validBody)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ValidateReservationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "morning", resp.Session)
		assert.Equal(t, 15, resp.ResultingTotal)

		// pointer-поля доходят до use case как есть
		require.NotNil(t, uc.got.PeopleCount)
		assert.Equal(t, 5, *uc.got.PeopleCount)
		require.NotNil(t, uc.got.RentalNeeded)
		assert.True(t, *uc.got.RentalNeeded)
	})

	t.Run("битый JSON", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ошибки правил допуска", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"пустое поле", domain.ErrMissingField, http.StatusBadRequest},
			{"число участников", domain.ErrInvalidPeopleCount, http.StatusBadRequest},
			{"вне окон сессий", domain.ErrOutsideSessionWindow, http.StatusBadRequest},
			{"лимит", &domain.CapacityError{CurrentTotal: 38, Requested: 5, ResultingTotal: 43}, http.StatusConflict},
			{"формат даты", validateReservation.ErrInvalidInput, http.StatusBadRequest},
			{"внутренняя ошибка", assert.AnError, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})

	t.Run("отказ по лимиту содержит цифры", func(t *testing.T) {
		uc := &fakeUseCase{err: &domain.CapacityError{CurrentTotal: 38, Requested: 5, ResultingTotal: 43}}

		rec := doRequest(t, uc, validBody)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "38")
		assert.Contains(t, rec.Body.String(), "5")
	})
}
