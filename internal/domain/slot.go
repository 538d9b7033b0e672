package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotState represents the occupancy state of a slot
type SlotState string

const (
	StateAvailable SlotState = "available"
	StateOccupied  SlotState = "occupied"
)

// Slot represents one bookable time interval at one facility.
// Rows are seeded administratively; the service only ever flips them
// between available and occupied.
type Slot struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Title      string
	StartsAt   time.Time
	EndsAt     *time.Time // nil = open-ended
	State      SlotState
	Owner      *uuid.UUID // set exactly when State == StateOccupied

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be claimed without an override
func (s *Slot) IsAvailable() bool {
	return s.State == StateAvailable
}

// IsOccupied returns true if the slot is currently owned by someone
func (s *Slot) IsOccupied() bool {
	return s.State == StateOccupied
}

// OwnedBy returns true if the slot is occupied by the given actor
func (s *Slot) OwnedBy(actorID uuid.UUID) bool {
	return s.Owner != nil && *s.Owner == actorID
}

// DurationMinutes returns the slot length in minutes.
// Open-ended slots count as defaultMinutes towards the daily cap.
func (s *Slot) DurationMinutes(defaultMinutes int) int {
	if s.EndsAt == nil {
		return defaultMinutes
	}
	return int(s.EndsAt.Sub(s.StartsAt) / time.Minute)
}

// Validate checks the ledger invariants: owner is present exactly when the
// slot is occupied, and starts_at precedes ends_at when ends_at is set.
func (s *Slot) Validate() error {
	switch s.State {
	case StateOccupied:
		if s.Owner == nil {
			return fmt.Errorf("slot %s: occupied without owner", s.ID)
		}
	case StateAvailable:
		if s.Owner != nil {
			return fmt.Errorf("slot %s: available with owner %s", s.ID, *s.Owner)
		}
	default:
		return fmt.Errorf("slot %s: unknown state %q", s.ID, s.State)
	}

	if s.EndsAt != nil && !s.StartsAt.Before(*s.EndsAt) {
		return fmt.Errorf("slot %s: starts_at must be before ends_at", s.ID)
	}

	return nil
}
