package claim_slot

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на занятие слота
type Request struct {
	SlotID  uuid.UUID // ID слота
	ActorID uuid.UUID // ID пользователя, занимающего слот
}

// Response модель ответа с занятым слотом
type Response struct {
	ID           uuid.UUID  // ID слота
	FacilityID   uuid.UUID  // ID помещения
	Title        string     // Название слота
	StartsAt     time.Time  // Начало слота
	EndsAt       *time.Time // Конец слота (опционально)
	State        string     // Состояние после операции
	Owner        *uuid.UUID // Владелец после операции
	WasAvailable bool       // Был ли слот свободен до занятия
	UpdatedAt    time.Time  // Время обновления
}
