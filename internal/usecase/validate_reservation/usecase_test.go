package validate_reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	"github.com/strikearena/SA-ReservationService/pkg/ptr"
	"github.com/strikearena/SA-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	byDate map[string][]*domain.Reservation
}

func (f *fakeReservationRepo) ListByDate(_ context.Context, date string) ([]*domain.Reservation, error) {
	return f.byDate[date], nil
}

func validRequest() *Request {
	return &Request{
		Name:         "Иван",
		Email:        "ivan@example.com",
		Team:         "Strike Team",
		Date:         "2026-09-01",
		Time:         "09:30",
		PeopleCount:  ptr.Ptr(5),
		RentalNeeded: ptr.Ptr(true),
	}
}

func TestExecute(t *testing.T) {
	t.Run("валидная заявка: утренняя сессия и итоги", func(t *testing.T) {
		repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
			"2026-09-01": {{Date: "2026-09-01", PeopleCount: 10}},
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "morning", resp.Session)
		assert.Equal(t, 10, resp.CurrentTotal)
		assert.Equal(t, 15, resp.ResultingTotal)
		assert.Equal(t, domain.FacilityCapacity, resp.Capacity)
	})

	t.Run("границы сессий включительно", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		for timeStr, want := range map[types.TimeString]string{
			"09:00": "morning",
			"11:00": "morning",
			"13:00": "afternoon",
			"16:00": "afternoon",
		} {
			req := validRequest()
			req.Time = timeStr

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err, "time=%s", timeStr)
			assert.Equal(t, want, resp.Session, "time=%s", timeStr)
		}
	})

	t.Run("время вне окон", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		for _, timeStr := range []types.TimeString{"08:59", "11:01", "12:59", "16:01"} {
			req := validRequest()
			req.Time = timeStr

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrOutsideSessionWindow, "time=%s", timeStr)
		}
	})

	t.Run("порядок правил: пустое поле важнее числа участников", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		req := validRequest()
		req.Name = ""
		req.PeopleCount = ptr.Ptr(0)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})

	t.Run("превышение лимита с деталями", func(t *testing.T) {
		repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
			"2026-09-01": {{Date: "2026-09-01", PeopleCount: 35}},
		}}
		uc := NewUseCase(repo, nopLogger{})

		req := validRequest()
		req.PeopleCount = ptr.Ptr(6)

		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)

		var capErr *domain.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 35, capErr.CurrentTotal)
		assert.Equal(t, 6, capErr.Requested)
		assert.Equal(t, 41, capErr.ResultingTotal)
	})

	t.Run("некорректный формат даты", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		req := validRequest()
		req.Date = "01.09.2026"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
