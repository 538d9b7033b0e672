package slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklokale/RoomBookingService/internal/domain"
	facilitystorage "github.com/eklokale/RoomBookingService/internal/infra/storage/facility"
	slotstorage "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
	"github.com/eklokale/RoomBookingService/pkg/ptr"
)

type fakeSlotRepo struct {
	slots map[uuid.UUID]*domain.Slot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotstorage.ErrSlotNotFound
	}
	return s, nil
}

func (r *fakeSlotRepo) ListOwnedForDay(_ context.Context, owner uuid.UUID, from, to time.Time) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0)
	for _, s := range r.slots {
		if s.Owner != nil && *s.Owner == owner && !s.StartsAt.Before(from) && s.StartsAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeFacilityRepo struct {
	facilities map[uuid.UUID]*domain.Facility
}

func (r *fakeFacilityRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, facilitystorage.ErrFacilityNotFound
	}
	return f, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_GetByID(t *testing.T) {
	slot := &domain.Slot{
		ID:         uuid.New(),
		FacilityID: uuid.New(),
		Title:      "08:00-09:00",
		StartsAt:   time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		State:      domain.StateAvailable,
	}

	svc := NewService(
		&fakeSlotRepo{slots: map[uuid.UUID]*domain.Slot{slot.ID: slot}},
		&fakeFacilityRepo{},
		time.UTC,
		nopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, slot.ID, resp.ID)
	assert.Equal(t, string(domain.StateAvailable), resp.State)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeSlotRepo{slots: map[uuid.UUID]*domain.Slot{}}, &fakeFacilityRepo{}, time.UTC, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_GetActorBookings(t *testing.T) {
	owner := uuid.New()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	inDay := &domain.Slot{
		ID: uuid.New(), FacilityID: uuid.New(), StartsAt: day.Add(9 * time.Hour),
		State: domain.StateOccupied, Owner: ptr.Ptr(owner),
	}
	otherDay := &domain.Slot{
		ID: uuid.New(), FacilityID: uuid.New(), StartsAt: day.AddDate(0, 0, 1).Add(9 * time.Hour),
		State: domain.StateOccupied, Owner: ptr.Ptr(owner),
	}

	svc := NewService(
		&fakeSlotRepo{slots: map[uuid.UUID]*domain.Slot{inDay.ID: inDay, otherDay.ID: otherDay}},
		&fakeFacilityRepo{},
		time.UTC,
		nopLogger{},
	)

	resp, err := svc.GetActorBookings(context.Background(), owner, day)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, inDay.ID, resp.Slots[0].ID)
}

func TestService_GetActorBookings_RequiresActor(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, &fakeFacilityRepo{}, time.UTC, nopLogger{})

	_, err := svc.GetActorBookings(context.Background(), uuid.Nil, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
