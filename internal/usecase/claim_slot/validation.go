package claim_slot

import (
	"fmt"

	"github.com/google/uuid"
)

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
