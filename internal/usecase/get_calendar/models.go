package get_calendar

// Request модель запроса календаря на месяц
type Request struct {
	Year  int // Например, 2026
	Month int // 1..12
}

// DayAggregate агрегат одного дня месяца
type DayAggregate struct {
	Date        string `json:"date"`        // YYYY-MM-DD
	TotalPeople int    `json:"totalPeople"` // Суммарно забронировано людей
	Band        string `json:"band"`        // empty | low | mid | full
}

// Response календарь месяца: агрегат на каждый день
type Response struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Capacity int            `json:"capacity"`
	Days     []DayAggregate `json:"days"`
}
