package domain

import (
	"sort"
	"strings"
)

// CapacityBand display-only bucket summarizing a day's total booked people.
// Используется только для раскраски календаря, не для контроля лимита,
// поэтому спокойно переживает total > FacilityCapacity.
type CapacityBand string

const (
	BandEmpty CapacityBand = "empty"
	BandLow   CapacityBand = "low"
	BandMid   CapacityBand = "mid"
	BandFull  CapacityBand = "full"
)

// DaySessions разбивка бронирований одного дня по сессиям
type DaySessions struct {
	Morning   []*Reservation
	Afternoon []*Reservation
	Other     []*Reservation
}

// AdminSummary итоги по списку бронирований (после фильтрации поиском)
type AdminSummary struct {
	TotalCount     int
	CheckedInCount int
	TotalPeople    int
}

// DateGroup бронирования одной даты, отсортированные по времени
type DateGroup struct {
	Date         string
	Reservations []*Reservation
}

// ByDate partitions reservations by date
func ByDate(list []*Reservation) map[string][]*Reservation {
	result := make(map[string][]*Reservation)
	for _, r := range list {
		if r.Date == "" {
			continue
		}
		result[r.Date] = append(result[r.Date], r)
	}
	return result
}

// DailyTotalPeople sums PeopleCount over the list.
// Отрицательных значений в хранилище не бывает; нулевые (legacy) дают 0.
func DailyTotalPeople(list []*Reservation) int {
	total := 0
	for _, r := range list {
		total += r.PeopleCount
	}
	return total
}

// BandForTotal maps a day's total people to its capacity band:
// 0 → empty, 1..20 → low, 21..39 → mid, >=40 → full.
func BandForTotal(total int) CapacityBand {
	switch {
	case total <= 0:
		return BandEmpty
	case total <= BandLowMax:
		return BandLow
	case total < FacilityCapacity:
		return BandMid
	default:
		return BandFull
	}
}

// SessionSplit partitions a single day's reservations into morning, afternoon
// and other. Записи с пустой или нераспознанной сессией (legacy-данные)
// попадают в Other и никогда не теряются.
func SessionSplit(list []*Reservation) DaySessions {
	var split DaySessions
	for _, r := range list {
		switch r.Session {
		case SessionMorning:
			split.Morning = append(split.Morning, r)
		case SessionAfternoon:
			split.Afternoon = append(split.Afternoon, r)
		default:
			split.Other = append(split.Other, r)
		}
	}
	return split
}

// FilterBySearchTerm возвращает бронирования, у которых term входит
// (без учета регистра) хотя бы в одно из полей: имя, email, команда, дата,
// время. Пустой или пробельный term возвращает список без изменений.
func FilterBySearchTerm(list []*Reservation, term string) []*Reservation {
	keyword := strings.ToLower(strings.TrimSpace(term))
	if keyword == "" {
		return list
	}

	result := make([]*Reservation, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Name), keyword) ||
			strings.Contains(strings.ToLower(r.Email), keyword) ||
			strings.Contains(strings.ToLower(r.Team), keyword) ||
			strings.Contains(strings.ToLower(r.Date), keyword) ||
			strings.Contains(strings.ToLower(r.Time.String()), keyword) {
			result = append(result, r)
		}
	}
	return result
}

// Summarize computes admin totals over the given list. Вызывается на уже
// отфильтрованном списке, чтобы итоги отражали активный поиск.
func Summarize(list []*Reservation) AdminSummary {
	summary := AdminSummary{TotalCount: len(list)}
	for _, r := range list {
		if r.CheckedIn {
			summary.CheckedInCount++
		}
		summary.TotalPeople += r.PeopleCount
	}
	return summary
}

// GroupByDateSorted groups reservations by date, orders groups ascending by
// date and each group's reservations ascending by time. Строковая сортировка
// YYYY-MM-DD и HH:MM совпадает с хронологической. Вход не изменяется.
func GroupByDateSorted(list []*Reservation) []DateGroup {
	byDate := ByDate(list)

	groups := make([]DateGroup, 0, len(byDate))
	for date, reservations := range byDate {
		sorted := make([]*Reservation, len(reservations))
		copy(sorted, reservations)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Time.IsBefore(sorted[j].Time)
		})
		groups = append(groups, DateGroup{Date: date, Reservations: sorted})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})

	return groups
}
