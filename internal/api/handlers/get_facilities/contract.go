package get_facilities

import (
	"context"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

type FacilitiesService interface {
	List(ctx context.Context) ([]*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
