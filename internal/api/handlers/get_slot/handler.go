package get_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	slotsService "github.com/eklokale/RoomBookingService/internal/service/slots"
)

const (
	msgInvalidSlotID = "Ugyldigt tidsrum."
	msgSlotNotFound  = "Tidsrummet findes ikke."
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slot_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slot_id"])
	if err != nil {
		h.logger.Warn("GET /slots/{slot_id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidSlotID)
		return
	}

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{slot_id} - Slot not found: slot=%s", slotID)
			handlers.RespondNotFound(w, "NOT_FOUND", msgSlotNotFound)

		default:
			h.logger.Error("GET /slots/{slot_id} - Failed: slot=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
