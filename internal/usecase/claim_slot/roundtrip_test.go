package claim_slot

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklokale/RoomBookingService/internal/domain"
	slotstorage "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
	releaseSlot "github.com/eklokale/RoomBookingService/internal/usecase/release_slot"
)

func (r *fakeSlotRepo) ReleaseIfOwner(_ context.Context, id uuid.UUID, requiredOwner uuid.UUID) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok || s.State != domain.StateOccupied || s.Owner == nil || *s.Owner != requiredOwner {
		return nil, slotstorage.ErrConflict
	}

	s.State = domain.StateAvailable
	s.Owner = nil
	s.UpdatedAt = time.Now()

	cp := *s
	return &cp, nil
}

// Бронирование и отмена над одним хранилищем возвращают слот
// в исходное состояние, меняется только updated_at
func TestClaimThenRelease_RestoresSlot(t *testing.T) {
	student := uuid.New()
	slot := availableSlot(uuid.New(), time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 60)
	before := *slot

	repo := newFakeSlotRepo(slot)
	claim := newClaimUseCase(repo, map[uuid.UUID]domain.Role{student: domain.RoleStudent})
	release := releaseSlot.NewUseCase(repo, nopMetrics{}, nopLogger{})

	claimed, err := claim.Execute(context.Background(), &Request{SlotID: slot.ID, ActorID: student})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateOccupied), claimed.State)

	released, err := release.Execute(context.Background(), &releaseSlot.Request{SlotID: slot.ID, ActorID: student})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateAvailable), released.State)

	after, err := repo.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.FacilityID, after.FacilityID)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.StartsAt, after.StartsAt)
	assert.Equal(t, before.EndsAt, after.EndsAt)
	assert.Equal(t, before.State, after.State)
	assert.Nil(t, after.Owner)

	again, err := claim.Execute(context.Background(), &Request{SlotID: slot.ID, ActorID: student})
	require.NoError(t, err)
	assert.True(t, again.WasAvailable)
}
