package create_reservation

import (
	"time"

	"github.com/strikearena/SA-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования (шаг "Подтвердить" мастера)
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

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string           // ID созданного бронирования
	Name         string           // Имя контактного лица
	Email        string           // Email для связи
	Team         string           // Название команды
	Date         string           // Дата игры
	Time         types.TimeString // Время начала
	PeopleCount  int              // Число участников
	RentalNeeded bool             // Нужна ли аренда снаряжения
	Session      string           // Назначенная сессия
	CreatedAt    time.Time        // Время создания
}
