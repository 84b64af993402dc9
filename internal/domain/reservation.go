package domain

import (
	"time"

	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// Session represents the admission window a reservation falls into
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// Reservation represents a confirmed booking at the facility
type Reservation struct {
	ID           string // назначается сервером при создании
	Name         string
	Email        string
	Team         string
	Date         string // YYYY-MM-DD
	Time         types.TimeString
	PeopleCount  int
	RentalNeeded bool
	Session      Session // у legacy-записей может быть пустым или нераспознанным
	CheckedIn    bool
	OwnerUserID  *string // nil для анонимных и legacy-записей
	CreatedAt    time.Time
}

// HasKnownSession returns true if the session field holds a recognized value
func (r *Reservation) HasKnownSession() bool {
	return r.Session == SessionMorning || r.Session == SessionAfternoon
}
