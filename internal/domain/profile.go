package domain

import "time"

// UserProfile prefill data for the reservation form, one per user.
// Создается/обновляется (upsert) при каждом успешном бронировании.
type UserProfile struct {
	UserID    string
	Name      string
	Email     string
	TeamName  string
	UpdatedAt time.Time
}
