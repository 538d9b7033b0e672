package get_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
	getAvailability "github.com/eklokale/RoomBookingService/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// RoleResolver интерфейс клиента для UserService
type RoleResolver interface {
	GetRole(ctx context.Context, userID uuid.UUID) (domain.Role, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
