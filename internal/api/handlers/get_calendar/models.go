package get_calendar

import getCalendar "github.com/strikearena/SA-ReservationService/internal/usecase/get_calendar"

// DayAggregate агрегат одного дня месяца
type DayAggregate struct {
	Date        string `json:"date"`
	TotalPeople int    `json:"totalPeople"`
	Band        string `json:"band"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Capacity int            `json:"capacity"`
	Days     []DayAggregate `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayAggregate, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayAggregate{
			Date:        d.Date,
			TotalPeople: d.TotalPeople,
			Band:        d.Band,
		})
	}

	return &CalendarResponse{
		Year:     resp.Year,
		Month:    resp.Month,
		Capacity: resp.Capacity,
		Days:     days,
	}
}
