package release_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	slotRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
)

// UseCase use case для освобождения слота
type UseCase struct {
	slotRepo SlotRepository
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case освобождения слота.
// Владение проверяется прямо в условной записи, отдельное чтение не
// нужно: UPDATE с WHERE owner = actor либо освобождает слот, либо не
// находит строку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseSlot: slot=%s, actor=%s", req.SlotID, req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseSlot: validation failed: %v", err)
		return nil, err
	}

	released, err := uc.slotRepo.ReleaseIfOwner(ctx, req.SlotID, req.ActorID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrConflict) {
			uc.logger.Warn("ReleaseSlot: slot=%s is not held by actor=%s", req.SlotID, req.ActorID)
			uc.metrics.RecordOutcome("release", "conflict")
			return nil, ErrNotOwnerOrNotFound
		}
		uc.logger.Error("ReleaseSlot: failed to release slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
	}

	uc.logger.Info("ReleaseSlot: actor=%s released slot=%s", req.ActorID, req.SlotID)
	uc.metrics.RecordOutcome("release", "success")

	return &Response{
		ID:         released.ID,
		FacilityID: released.FacilityID,
		Title:      released.Title,
		StartsAt:   released.StartsAt,
		EndsAt:     released.EndsAt,
		State:      string(released.State),
		UpdatedAt:  released.UpdatedAt,
	}, nil
}

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slot_id is required", ErrInvalidInput)
	}
	if req.ActorID == uuid.Nil {
		return fmt.Errorf("%w: actor_id is required", ErrInvalidInput)
	}
	return nil
}
