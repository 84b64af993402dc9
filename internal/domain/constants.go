package domain

import "github.com/strikearena/SA-ReservationService/pkg/types"

// Facility capacity
const (
	// FacilityCapacity максимальное суммарное число участников на одну дату.
	// Лимит общий на день, а не на сессию.
	FacilityCapacity = 40
)

// Session windows (границы включительно)
const (
	MorningStart   types.TimeString = "09:00"
	MorningEnd     types.TimeString = "11:00"
	AfternoonStart types.TimeString = "13:00"
	AfternoonEnd   types.TimeString = "16:00"
)

// Capacity band thresholds
const (
	// BandLowMax верхняя граница полосы "low" (1..20 человек)
	BandLowMax = 20
)

// Business hours defaults (пока администратор не сохранил свои)
const (
	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "17:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Auth constants
const (
	MinPasswordLength = 6
)
