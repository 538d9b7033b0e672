package slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	ListOwnedForDay(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]*domain.Slot, error)
}

// FacilityRepository интерфейс репозитория помещений
type FacilityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
