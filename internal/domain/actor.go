package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role is the actor role resolved by the external user service
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Actor is the identity performing a claim or release. The role is an
// input resolved elsewhere; this service never stores or mutates it.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// ParseRole validates a raw role string from the user service
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}
