package release_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	"github.com/eklokale/RoomBookingService/internal/api/middleware"
	releaseSlot "github.com/eklokale/RoomBookingService/internal/usecase/release_slot"
)

const (
	msgInvalidSlotID = "Ugyldigt tidsrum."
	msgNotOwner      = "Tidsrummet findes ikke eller er ikke booket af dig."
)

// ReleaseSlotResponse HTTP модель освобождённого слота
type ReleaseSlotResponse struct {
	ID         uuid.UUID  `json:"id"`
	FacilityID uuid.UUID  `json:"facilityId"`
	Title      string     `json:"title"`
	StartsAt   time.Time  `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt,omitempty"`
	State      string     `json:"state"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slot_id}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slot_id"])
	if err != nil {
		h.logger.Warn("POST /slots/{slot_id}/release - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidSlotID)
		return
	}

	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "LOGIN_REQUIRED", "Du skal være logget ind.")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseSlot.Request{
		SlotID:  slotID,
		ActorID: actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrNotOwnerOrNotFound):
			h.logger.Warn("POST /slots/{slot_id}/release - Not owner: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondNotFound(w, "NOT_FOUND_OR_NOT_OWNER", msgNotOwner)

		case errors.Is(err, releaseSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{slot_id}/release - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidSlotID)

		default:
			h.logger.Error("POST /slots/{slot_id}/release - Failed to release: slot=%s, actor=%s, error=%v",
				slotID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{slot_id}/release - Slot released: slot=%s, actor=%s", slotID, actorID)
	handlers.RespondJSON(w, http.StatusOK, &ReleaseSlotResponse{
		ID:         result.ID,
		FacilityID: result.FacilityID,
		Title:      result.Title,
		StartsAt:   result.StartsAt,
		EndsAt:     result.EndsAt,
		State:      result.State,
		UpdatedAt:  result.UpdatedAt,
	})
}
