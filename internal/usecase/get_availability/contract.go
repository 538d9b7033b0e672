package get_availability

import (
	"context"
	"time"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListForDay(ctx context.Context, from, to time.Time) ([]*domain.Slot, error)
}

// FacilityProvider интерфейс справочника помещений
type FacilityProvider interface {
	List(ctx context.Context) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
