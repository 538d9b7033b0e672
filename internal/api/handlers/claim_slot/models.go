package claim_slot

import (
	"time"

	"github.com/google/uuid"

	claimSlot "github.com/eklokale/RoomBookingService/internal/usecase/claim_slot"
)

// ClaimSlotResponse HTTP модель занятого слота
type ClaimSlotResponse struct {
	ID           uuid.UUID  `json:"id"`
	FacilityID   uuid.UUID  `json:"facilityId"`
	Title        string     `json:"title"`
	StartsAt     time.Time  `json:"startsAt"`
	EndsAt       *time.Time `json:"endsAt,omitempty"`
	State        string     `json:"state"`
	Owner        *uuid.UUID `json:"owner,omitempty"`
	WasAvailable bool       `json:"wasAvailable"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *claimSlot.Response) *ClaimSlotResponse {
	return &ClaimSlotResponse{
		ID:           resp.ID,
		FacilityID:   resp.FacilityID,
		Title:        resp.Title,
		StartsAt:     resp.StartsAt,
		EndsAt:       resp.EndsAt,
		State:        resp.State,
		Owner:        resp.Owner,
		WasAvailable: resp.WasAvailable,
		UpdatedAt:    resp.UpdatedAt,
	}
}
