package domain

import (
	"fmt"

	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// AdmissionRequest кандидат на бронирование до проверки правил допуска
type AdmissionRequest struct {
	Name         string
	Email        string
	Team         string
	Date         string // YYYY-MM-DD
	Time         types.TimeString
	PeopleCount  *int  // nil = поле не передано
	RentalNeeded *bool // nil = выбор не сделан
	OwnerUserID  *string
}

// DeriveSession определяет сессию по времени начала. Границы окон включительно;
// сравнение строковое (для HH:MM с ведущими нулями оно совпадает с числовым).
func DeriveSession(t types.TimeString) (Session, bool) {
	switch {
	case !t.IsBefore(MorningStart) && !t.IsAfter(MorningEnd):
		return SessionMorning, true
	case !t.IsBefore(AfternoonStart) && !t.IsAfter(AfternoonEnd):
		return SessionAfternoon, true
	default:
		return "", false
	}
}

// Admit применяет правила допуска к заявке при текущем списке бронирований
// на ту же дату. Правила проверяются по порядку, первое нарушенное побеждает:
//
//  1. Все обязательные поля заполнены (включая явный выбор аренды) — ErrMissingField
//  2. Число участников — целое > 0 — ErrInvalidPeopleCount
//  3. Время попадает в окно 09:00–11:00 или 13:00–16:00 — иначе ErrOutsideSessionWindow;
//     при успехе заявке назначается сессия
//  4. Сумма участников за день с учетом заявки не превышает FacilityCapacity —
//     иначе *CapacityError (лимит общий на день, сессии не учитываются)
//
// Функция чистая: ничего не сохраняет и не изменяет existing. Возвращаемая
// бронь заполнена полностью, кроме ID и CreatedAt — их назначает хранилище.
func Admit(req AdmissionRequest, existing []*Reservation) (*Reservation, error) {
	if req.Name == "" || req.Email == "" || req.Team == "" ||
		req.Date == "" || req.Time.IsZero() || req.PeopleCount == nil || req.RentalNeeded == nil {
		return nil, ErrMissingField
	}

	peopleCount := *req.PeopleCount
	if peopleCount <= 0 {
		return nil, ErrInvalidPeopleCount
	}

	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutsideSessionWindow, err)
	}

	session, ok := DeriveSession(req.Time)
	if !ok {
		return nil, ErrOutsideSessionWindow
	}

	currentTotal := DailyTotalPeople(existing)
	if currentTotal+peopleCount > FacilityCapacity {
		return nil, &CapacityError{
			CurrentTotal:   currentTotal,
			Requested:      peopleCount,
			ResultingTotal: currentTotal + peopleCount,
		}
	}

	return &Reservation{
		Name:         req.Name,
		Email:        req.Email,
		Team:         req.Team,
		Date:         req.Date,
		Time:         req.Time,
		PeopleCount:  peopleCount,
		RentalNeeded: *req.RentalNeeded,
		Session:      session,
		CheckedIn:    false,
		OwnerUserID:  req.OwnerUserID,
	}, nil
}
