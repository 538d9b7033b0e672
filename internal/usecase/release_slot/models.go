package release_slot

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на освобождение слота
type Request struct {
	SlotID  uuid.UUID // ID слота
	ActorID uuid.UUID // ID пользователя, освобождающего слот
}

// Response модель ответа с освобождённым слотом
type Response struct {
	ID         uuid.UUID  // ID слота
	FacilityID uuid.UUID  // ID помещения
	Title      string     // Название слота
	StartsAt   time.Time  // Начало слота
	EndsAt     *time.Time // Конец слота (опционально)
	State      string     // Состояние после операции
	UpdatedAt  time.Time  // Время обновления
}
