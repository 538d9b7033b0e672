package facilities

import (
	"context"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория помещений
type FacilityRepository interface {
	List(ctx context.Context) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
