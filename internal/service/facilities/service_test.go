package facilities

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

type countingRepo struct {
	calls      int
	facilities []*domain.Facility
	err        error
}

func (r *countingRepo) List(_ context.Context) ([]*domain.Facility, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.facilities, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_List_CachesResult(t *testing.T) {
	repo := &countingRepo{facilities: []*domain.Facility{{ID: uuid.New(), Title: "Lokale 2.15"}}}
	svc := NewService(repo, 5*time.Minute, nopLogger{})

	first, err := svc.List(context.Background())
	require.NoError(t, err)

	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestService_List_InvalidateForcesReload(t *testing.T) {
	repo := &countingRepo{facilities: []*domain.Facility{{ID: uuid.New(), Title: "Lokale 2.15"}}}
	svc := NewService(repo, 5*time.Minute, nopLogger{})

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := &countingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, 5*time.Minute, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
