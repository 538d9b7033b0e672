package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// SlotResponse представление слота
type SlotResponse struct {
	ID         uuid.UUID  `json:"id"`
	FacilityID uuid.UUID  `json:"facilityId"`
	Title      string     `json:"title"`
	StartsAt   time.Time  `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt,omitempty"`
	State      string     `json:"state"`
	Owner      *uuid.UUID `json:"owner,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

// FromDomainSlot конвертирует domain слот в response
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		FacilityID: s.FacilityID,
		Title:      s.Title,
		StartsAt:   s.StartsAt,
		EndsAt:     s.EndsAt,
		State:      string(s.State),
		Owner:      s.Owner,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromDomainSlots конвертирует список domain слотов в response
func FromDomainSlots(slots []*domain.Slot) *SlotListResponse {
	out := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return &SlotListResponse{Slots: out, Total: len(out)}
}
