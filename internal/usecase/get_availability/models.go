package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// Группы помещений в ответе для преподавателей
const (
	GroupAvailable    = "available"
	GroupShared       = "shared"
	GroupTeaching     = "teaching"
	GroupOpenLearning = "open_learning"
)

// Request модель запроса доступности на день
type Request struct {
	Date    time.Time   // Календарный день
	ActorID uuid.UUID   // ID запрашивающего пользователя
	Role    domain.Role // Роль запрашивающего
}

// Response модель ответа с доступностью на день
type Response struct {
	Date   string  // День в формате YYYY-MM-DD
	Groups []Group // Группы помещений, порядок фиксирован
}

// Group группа помещений одной категории
type Group struct {
	Category   string
	Facilities []FacilitySlots
}

// FacilitySlots помещение вместе с его слотами на день
type FacilitySlots struct {
	ID           uuid.UUID
	Title        string
	Capacity     *string
	Description  *string
	Floor        *string
	FacilityType *string
	Slots        []SlotView
}

// SlotView представление слота в ответе
type SlotView struct {
	ID           uuid.UUID
	Title        string
	StartsAt     time.Time
	EndsAt       *time.Time
	State        string
	Owner        *uuid.UUID
	OwnedByActor bool // Слот занят самим запрашивающим
}
