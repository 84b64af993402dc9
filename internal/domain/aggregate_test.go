package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikearena/SA-ReservationService/pkg/types"
)

func res(id, date, timeStr, team string, people int, session Session, checkedIn bool) *Reservation {
	return &Reservation{
		ID:          id,
		Name:        "name-" + id,
		Email:       id + "@example.com",
		Team:        team,
		Date:        date,
		Time:        types.TimeString(timeStr),
		PeopleCount: people,
		Session:     session,
		CheckedIn:   checkedIn,
	}
}

func TestByDate(t *testing.T) {
	list := []*Reservation{
		res("a", "2025-11-10", "09:00", "alpha", 3, SessionMorning, false),
		res("b", "2025-11-10", "13:00", "beta", 4, SessionAfternoon, false),
		res("c", "2025-11-05", "10:00", "gamma", 2, SessionMorning, false),
	}

	byDate := ByDate(list)
	require.Len(t, byDate, 2)
	assert.Len(t, byDate["2025-11-10"], 2)
	assert.Len(t, byDate["2025-11-05"], 1)
}

func TestDailyTotalPeople(t *testing.T) {
	list := []*Reservation{
		res("a", "2025-11-10", "09:00", "alpha", 10, SessionMorning, false),
		res("b", "2025-11-10", "13:00", "beta", 0, SessionAfternoon, false), // legacy без числа
		res("c", "2025-11-10", "14:00", "gamma", 7, SessionAfternoon, false),
	}

	assert.Equal(t, 17, DailyTotalPeople(list))
	assert.Equal(t, 0, DailyTotalPeople(nil))
}

func TestBandForTotal(t *testing.T) {
	tests := []struct {
		total int
		want  CapacityBand
	}{
		{0, BandEmpty},
		{1, BandLow},
		{20, BandLow},
		{21, BandMid},
		{39, BandMid},
		{40, BandFull},
		{45, BandFull}, // больше номинального лимита — без ошибки
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandForTotal(tt.total), "total=%d", tt.total)
	}
}

func TestSessionSplit(t *testing.T) {
	legacy := res("d", "2025-11-10", "12:00", "delta", 2, "", false)
	unknown := res("e", "2025-11-10", "12:30", "epsilon", 1, Session("午前の部"), false)

	list := []*Reservation{
		res("a", "2025-11-10", "09:00", "alpha", 3, SessionMorning, false),
		res("b", "2025-11-10", "13:00", "beta", 4, SessionAfternoon, false),
		legacy,
		unknown,
	}

	split := SessionSplit(list)
	assert.Len(t, split.Morning, 1)
	assert.Len(t, split.Afternoon, 1)
	// legacy-записи без распознанной сессии не теряются
	require.Len(t, split.Other, 2)
	assert.Equal(t, legacy, split.Other[0])
	assert.Equal(t, unknown, split.Other[1])
}

func TestFilterBySearchTerm(t *testing.T) {
	list := []*Reservation{
		res("a", "2025-11-10", "09:00", "Red team", 3, SessionMorning, false),
		res("b", "2025-11-10", "13:00", "Blue team", 4, SessionAfternoon, false),
		res("c", "2025-12-01", "10:00", "Green", 2, SessionMorning, false),
	}

	t.Run("blank term is identity", func(t *testing.T) {
		assert.Equal(t, list, FilterBySearchTerm(list, ""))
		assert.Equal(t, list, FilterBySearchTerm(list, "   "))
	})

	t.Run("case-insensitive team match", func(t *testing.T) {
		filtered := FilterBySearchTerm(list, "red")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Red team", filtered[0].Team)
	})

	t.Run("matches date and time fields", func(t *testing.T) {
		assert.Len(t, FilterBySearchTerm(list, "2025-12"), 1)
		assert.Len(t, FilterBySearchTerm(list, "13:00"), 1)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterBySearchTerm(list, "purple"))
	})
}

func TestSummarize_OnFilteredList(t *testing.T) {
	list := []*Reservation{
		res("a", "2025-11-10", "09:00", "Red team", 3, SessionMorning, true),
		res("b", "2025-11-10", "13:00", "Blue team", 4, SessionAfternoon, false),
	}

	// Итоги считаются по отфильтрованному списку, а не по полному
	filtered := FilterBySearchTerm(list, "red")
	summary := Summarize(filtered)

	assert.Equal(t, 1, summary.TotalCount)
	assert.Equal(t, 1, summary.CheckedInCount)
	assert.Equal(t, 3, summary.TotalPeople)
}

func TestGroupByDateSorted(t *testing.T) {
	list := []*Reservation{
		res("a", "2025-11-10", "15:00", "alpha", 3, SessionAfternoon, false),
		res("b", "2025-11-10", "14:00", "beta", 4, SessionAfternoon, false),
		res("c", "2025-11-05", "09:00", "gamma", 2, SessionMorning, false),
	}

	groups := GroupByDateSorted(list)
	require.Len(t, groups, 2)

	assert.Equal(t, "2025-11-05", groups[0].Date)
	assert.Equal(t, "2025-11-10", groups[1].Date)

	require.Len(t, groups[1].Reservations, 2)
	assert.Equal(t, types.TimeString("14:00"), groups[1].Reservations[0].Time)
	assert.Equal(t, types.TimeString("15:00"), groups[1].Reservations[1].Time)

	// Исходный список не изменился
	assert.Equal(t, types.TimeString("15:00"), list[0].Time)
	assert.Equal(t, "2025-11-10", list[0].Date)
}
