package get_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/service/slots/models"
)

type SlotsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
