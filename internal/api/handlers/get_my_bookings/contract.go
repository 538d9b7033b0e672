package get_my_bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/service/slots/models"
)

type SlotsService interface {
	GetActorBookings(ctx context.Context, actorID uuid.UUID, date time.Time) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
