package get_availability

import (
	"time"

	"github.com/google/uuid"

	getAvailability "github.com/eklokale/RoomBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP модель доступности на день
type AvailabilityResponse struct {
	Date   string          `json:"date"`
	Groups []GroupResponse `json:"groups"`
}

// GroupResponse группа помещений одной категории
type GroupResponse struct {
	Category   string             `json:"category"`
	Facilities []FacilityResponse `json:"facilities"`
}

// FacilityResponse помещение с его слотами
type FacilityResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Capacity     *string        `json:"capacity,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Floor        *string        `json:"floor,omitempty"`
	FacilityType *string        `json:"facilityType,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

// SlotResponse слот в ответе доступности
type SlotResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	StartsAt     time.Time  `json:"startsAt"`
	EndsAt       *time.Time `json:"endsAt,omitempty"`
	State        string     `json:"state"`
	Owner        *uuid.UUID `json:"owner,omitempty"`
	OwnedByActor bool       `json:"ownedByActor"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	groups := make([]GroupResponse, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		facilities := make([]FacilityResponse, 0, len(g.Facilities))
		for _, f := range g.Facilities {
			slots := make([]SlotResponse, 0, len(f.Slots))
			for _, s := range f.Slots {
				slots = append(slots, SlotResponse{
					ID:           s.ID,
					Title:        s.Title,
					StartsAt:     s.StartsAt,
					EndsAt:       s.EndsAt,
					State:        s.State,
					Owner:        s.Owner,
					OwnedByActor: s.OwnedByActor,
				})
			}
			facilities = append(facilities, FacilityResponse{
				ID:           f.ID,
				Title:        f.Title,
				Capacity:     f.Capacity,
				Description:  f.Description,
				Floor:        f.Floor,
				FacilityType: f.FacilityType,
				Slots:        slots,
			})
		}
		groups = append(groups, GroupResponse{Category: g.Category, Facilities: facilities})
	}

	return &AvailabilityResponse{Date: resp.Date, Groups: groups}
}
