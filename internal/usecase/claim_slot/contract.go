package claim_slot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	ClaimIfState(ctx context.Context, id uuid.UUID, expectedState domain.SlotState, expectedOwner *uuid.UUID, newOwner uuid.UUID) (*domain.Slot, error)
	ListOwnedForDay(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]*domain.Slot, error)
}

// RoleResolver интерфейс клиента для UserService
type RoleResolver interface {
	GetRole(ctx context.Context, userID uuid.UUID) (domain.Role, error)
}

// Metrics интерфейс для записи бизнес-метрик
type Metrics interface {
	RecordOutcome(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
