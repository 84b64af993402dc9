package validate_reservation

import "github.com/strikearena/SA-ReservationService/pkg/types"

// Request модель заявки на проверку (первый шаг мастера бронирования)
type Request struct {
	Name         string           // Имя контактного лица
	Email        string           // Email для связи
	Team         string           // Название команды
	Date         string           // Дата игры, YYYY-MM-DD
	Time         types.TimeString // Время начала, например "09:30"
	PeopleCount  *int             // Число участников (nil = не передано)
	RentalNeeded *bool            // Нужна ли аренда снаряжения (nil = выбор не сделан)
	OwnerUserID  *string          // ID владельца, если пользователь вошел в систему
}

// Response результат успешной проверки: заявка проходит все правила допуска
type Response struct {
	Session        string // Назначенная сессия: "morning" или "afternoon"
	CurrentTotal   int    // Уже занято мест на эту дату
	ResultingTotal int    // Итог с учетом заявки
	Capacity       int    // Дневной лимит площадки
}
