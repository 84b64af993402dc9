package get_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	list    []*domain.Reservation
	gotFrom string
	gotTo   string
}

func (f *fakeReservationRepo) ListByDateRange(_ context.Context, from, to string) ([]*domain.Reservation, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.list, nil
}

func TestExecute(t *testing.T) {
	t.Run("агрегат на каждый день месяца", func(t *testing.T) {
		repo := &fakeReservationRepo{list: []*domain.Reservation{
			{Date: "2026-02-10", PeopleCount: 15},
			{Date: "2026-02-10", PeopleCount: 10},
			{Date: "2026-02-14", PeopleCount: 40},
			{Date: "2026-02-20", PeopleCount: 3},
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 2})
		require.NoError(t, err)

		assert.Equal(t, "2026-02-01", repo.gotFrom)
		assert.Equal(t, "2026-02-28", repo.gotTo)
		require.Len(t, resp.Days, 28)

		byDate := make(map[string]DayAggregate)
		for _, d := range resp.Days {
			byDate[d.Date] = d
		}

		assert.Equal(t, DayAggregate{Date: "2026-02-10", TotalPeople: 25, Band: "mid"}, byDate["2026-02-10"])
		assert.Equal(t, DayAggregate{Date: "2026-02-14", TotalPeople: 40, Band: "full"}, byDate["2026-02-14"])
		assert.Equal(t, DayAggregate{Date: "2026-02-20", TotalPeople: 3, Band: "low"}, byDate["2026-02-20"])
		assert.Equal(t, DayAggregate{Date: "2026-02-01", TotalPeople: 0, Band: "empty"}, byDate["2026-02-01"])
	})

	t.Run("високосный февраль", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Year: 2028, Month: 2})
		require.NoError(t, err)

		assert.Equal(t, "2028-02-29", repo.gotTo)
		assert.Len(t, resp.Days, 29)
	})

	t.Run("некорректный месяц", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		for _, month := range []int{0, 13, -1} {
			_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: month})
			assert.ErrorIs(t, err, ErrInvalidInput, "month=%d", month)
		}
	})

	t.Run("некорректный год", func(t *testing.T) {
		uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Year: 1999, Month: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
