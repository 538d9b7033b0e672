package userservice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_GetRole(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/internal/users/%s/role", userID), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"user_id": %q, "role": "teacher"}`, userID)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	role, err := client.GetRole(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTeacher, role)
}

func TestClient_GetRole_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetRole(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestClient_GetRole_UnknownRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"user_id": "x", "role": "janitor"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetRole(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetRole_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetRole(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
