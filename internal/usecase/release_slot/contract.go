package release_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ReleaseIfOwner(ctx context.Context, id uuid.UUID, requiredOwner uuid.UUID) (*domain.Slot, error)
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
