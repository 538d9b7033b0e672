package rules

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

func TestEngine_CanClaim(t *testing.T) {
	actor := uuid.New()
	other := uuid.New()

	engine := Engine{
		MaxDailyMinutes:      240,
		DefaultSlotMinutes:   60,
		SingleFacilityPerDay: true,
	}

	tests := []struct {
		name    string
		facts   ClaimFacts
		wantErr error
	}{
		{
			name: "student claims available slot",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleStudent,
				SlotState: domain.StateAvailable,
			},
		},
		{
			name: "teacher claims available slot",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleTeacher,
				SlotState: domain.StateAvailable,
			},
		},
		{
			name: "student cannot override student",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleStudent,
				SlotState: domain.StateOccupied,
				OwnerID:   &other,
				OwnerRole: domain.RoleStudent,
			},
			wantErr: ErrStudentCannotOverride,
		},
		{
			name: "student cannot override teacher",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleStudent,
				SlotState: domain.StateOccupied,
				OwnerID:   &other,
				OwnerRole: domain.RoleTeacher,
			},
			wantErr: ErrStudentCannotOverride,
		},
		{
			name: "student cannot re-claim own slot",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleStudent,
				SlotState: domain.StateOccupied,
				OwnerID:   &actor,
				OwnerRole: domain.RoleStudent,
			},
			wantErr: ErrStudentCannotOverride,
		},
		{
			name: "teacher overrides student",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleTeacher,
				SlotState: domain.StateOccupied,
				OwnerID:   &other,
				OwnerRole: domain.RoleStudent,
			},
		},
		{
			name: "teacher cannot override another teacher",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleTeacher,
				SlotState: domain.StateOccupied,
				OwnerID:   &other,
				OwnerRole: domain.RoleTeacher,
			},
			wantErr: ErrTeacherCannotOverrideTeacher,
		},
		{
			name: "teacher re-claiming own slot is denied",
			facts: ClaimFacts{
				ActorID:   actor,
				ActorRole: domain.RoleTeacher,
				SlotState: domain.StateOccupied,
				OwnerID:   &actor,
				OwnerRole: domain.RoleTeacher,
			},
			wantErr: ErrAlreadyOwned,
		},
		{
			name: "daily cap reached",
			facts: ClaimFacts{
				ActorID:       actor,
				ActorRole:     domain.RoleStudent,
				SlotState:     domain.StateAvailable,
				SlotMinutes:   60,
				BookedMinutes: 240,
			},
			wantErr: ErrMaxHoursExceeded,
		},
		{
			name: "slot that would cross the cap is denied",
			facts: ClaimFacts{
				ActorID:       actor,
				ActorRole:     domain.RoleStudent,
				SlotState:     domain.StateAvailable,
				SlotMinutes:   90,
				BookedMinutes: 180,
			},
			wantErr: ErrMaxHoursExceeded,
		},
		{
			name: "slot that exactly fills the cap is allowed",
			facts: ClaimFacts{
				ActorID:       actor,
				ActorRole:     domain.RoleStudent,
				SlotState:     domain.StateAvailable,
				SlotMinutes:   60,
				BookedMinutes: 180,
			},
		},
		{
			name: "cap applies to teachers too",
			facts: ClaimFacts{
				ActorID:       actor,
				ActorRole:     domain.RoleTeacher,
				SlotState:     domain.StateAvailable,
				SlotMinutes:   60,
				BookedMinutes: 240,
			},
			wantErr: ErrMaxHoursExceeded,
		},
		{
			name: "second facility on the same day is denied",
			facts: ClaimFacts{
				ActorID:           actor,
				ActorRole:         domain.RoleStudent,
				SlotState:         domain.StateAvailable,
				SlotMinutes:       60,
				OwnsOtherFacility: true,
			},
			wantErr: ErrMultiFacilityNotAllowed,
		},
		{
			name: "override rules run before the cap",
			facts: ClaimFacts{
				ActorID:       actor,
				ActorRole:     domain.RoleStudent,
				SlotState:     domain.StateOccupied,
				OwnerID:       &other,
				OwnerRole:     domain.RoleStudent,
				SlotMinutes:   60,
				BookedMinutes: 240,
			},
			wantErr: ErrStudentCannotOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.CanClaim(tt.facts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEngine_CanClaim_MultiFacilityDisabled(t *testing.T) {
	engine := Engine{
		MaxDailyMinutes:      240,
		DefaultSlotMinutes:   60,
		SingleFacilityPerDay: false,
	}

	err := engine.CanClaim(ClaimFacts{
		ActorID:           uuid.New(),
		ActorRole:         domain.RoleStudent,
		SlotState:         domain.StateAvailable,
		SlotMinutes:       60,
		OwnsOtherFacility: true,
	})
	assert.NoError(t, err)
}

func TestEngine_CanRelease(t *testing.T) {
	engine := NewEngine()
	actor := uuid.New()
	other := uuid.New()

	assert.NoError(t, engine.CanRelease(actor, &actor))
	assert.ErrorIs(t, engine.CanRelease(actor, &other), ErrNotOwner)
	assert.ErrorIs(t, engine.CanRelease(actor, nil), ErrNotOwner)
}
