// Package rules contains the booking policy decisions. The engine is pure:
// it performs no I/O, and the same facts always produce the same verdict.
// Callers gather the facts (current slot state, roles, the actor's bookings
// for the day) and re-gather them after a ledger conflict.
package rules

import (
	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// Engine holds the configurable parts of the booking policy
type Engine struct {
	// MaxDailyMinutes суммарный дневной лимит занятого времени на актёра
	MaxDailyMinutes int

	// DefaultSlotMinutes сколько минут считается за слот без ends_at
	DefaultSlotMinutes int

	// SingleFacilityPerDay запрещает занимать второе помещение в тот же день
	SingleFacilityPerDay bool
}

// NewEngine creates an engine with the domain default policy
func NewEngine() Engine {
	return Engine{
		MaxDailyMinutes:      domain.DefaultMaxDailyMinutes,
		DefaultSlotMinutes:   domain.DefaultSlotMinutes,
		SingleFacilityPerDay: domain.DefaultSingleFacilityPerDay,
	}
}

// ClaimFacts are the inputs to a claim decision, all gathered by the caller
type ClaimFacts struct {
	ActorID   uuid.UUID
	ActorRole domain.Role

	// Target slot as the caller last read it
	SlotState domain.SlotState
	OwnerID   *uuid.UUID
	OwnerRole domain.Role // meaningful only when SlotState == StateOccupied

	// SlotMinutes длительность целевого слота
	SlotMinutes int

	// BookedMinutes сколько минут актёр уже занимает в этот день
	BookedMinutes int

	// OwnsOtherFacility актёр уже занимает слот в другом помещении в этот день
	OwnsOtherFacility bool
}

// CanClaim decides whether the actor may claim the slot described by the
// facts. Override rules are applied first, then the daily-cap and
// single-room gates. A nil return means the claim is allowed.
func (e Engine) CanClaim(f ClaimFacts) error {
	if f.SlotState == domain.StateOccupied {
		if f.ActorRole == domain.RoleStudent {
			return ErrStudentCannotOverride
		}

		// Учитель: можно перехватить только слот студента
		if f.OwnerID != nil && *f.OwnerID == f.ActorID {
			return ErrAlreadyOwned
		}
		if f.OwnerRole == domain.RoleTeacher {
			return ErrTeacherCannotOverrideTeacher
		}
	}

	if f.BookedMinutes+f.SlotMinutes > e.MaxDailyMinutes {
		return ErrMaxHoursExceeded
	}

	if e.SingleFacilityPerDay && f.OwnsOtherFacility {
		return ErrMultiFacilityNotAllowed
	}

	return nil
}

// CanRelease decides whether the actor may release the slot. Only the
// current owner may release; the ledger enforces the same rule atomically,
// this check just lets callers fail fast on a stale read.
func (e Engine) CanRelease(actorID uuid.UUID, ownerID *uuid.UUID) error {
	if ownerID == nil || *ownerID != actorID {
		return ErrNotOwner
	}
	return nil
}
