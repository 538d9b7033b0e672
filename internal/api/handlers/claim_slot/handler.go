package claim_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	"github.com/eklokale/RoomBookingService/internal/api/middleware"
	claimSlot "github.com/eklokale/RoomBookingService/internal/usecase/claim_slot"
)

const (
	msgInvalidSlotID   = "Ugyldigt tidsrum."
	msgSlotNotFound    = "Tidsrummet findes ikke."
	msgRoleMissing     = "Brugerens rolle kunne ikke bestemmes."
	msgStudentOverride = "Elever kan ikke overtage et optaget tidsrum."
	msgTeacherOverride = "Du kan ikke overtage et tidsrum, der er booket af en anden lærer."
	msgAlreadyOwned    = "Du har allerede booket dette tidsrum."
	msgMaxHours        = "Du kan højst booke 4 timer pr. dag."
	msgMultiRoom       = "Du kan kun booke ét lokale pr. dag."
	msgAlreadyTaken    = "Tidsrummet er allerede taget."
)

type Handler struct {
	useCase ClaimSlotUseCase
	logger  Logger
}

func NewHandler(useCase ClaimSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slot_id}/claim
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slot_id"])
	if err != nil {
		h.logger.Warn("POST /slots/{slot_id}/claim - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidSlotID)
		return
	}

	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "LOGIN_REQUIRED", "Du skal være logget ind.")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &claimSlot.Request{
		SlotID:  slotID,
		ActorID: actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, claimSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{slot_id}/claim - Slot not found: slot=%s", slotID)
			handlers.RespondNotFound(w, "NOT_FOUND", msgSlotNotFound)

		case errors.Is(err, claimSlot.ErrRoleMissing):
			h.logger.Warn("POST /slots/{slot_id}/claim - Role missing: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondForbidden(w, "OWNER_ROLE_MISSING", msgRoleMissing)

		case errors.Is(err, claimSlot.ErrStudentCannotOverride):
			h.logger.Warn("POST /slots/{slot_id}/claim - Student override denied: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondForbidden(w, "STUDENT_CANNOT_OVERRIDE", msgStudentOverride)

		case errors.Is(err, claimSlot.ErrTeacherCannotOverride):
			h.logger.Warn("POST /slots/{slot_id}/claim - Teacher override denied: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondForbidden(w, "TEACHER_CANNOT_OVERRIDE_TEACHER", msgTeacherOverride)

		case errors.Is(err, claimSlot.ErrAlreadyOwned):
			h.logger.Warn("POST /slots/{slot_id}/claim - Already owned: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondConflict(w, "ALREADY_TAKEN", msgAlreadyOwned)

		case errors.Is(err, claimSlot.ErrMaxHoursExceeded):
			h.logger.Warn("POST /slots/{slot_id}/claim - Daily limit exceeded: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondForbidden(w, "MAX_HOURS_EXCEEDED", msgMaxHours)

		case errors.Is(err, claimSlot.ErrMultiFacilityNotAllowed):
			h.logger.Warn("POST /slots/{slot_id}/claim - Multi room denied: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondForbidden(w, "MULTI_ROOM_NOT_ALLOWED", msgMultiRoom)

		case errors.Is(err, claimSlot.ErrAlreadyTaken):
			h.logger.Warn("POST /slots/{slot_id}/claim - Lost the race: slot=%s, actor=%s", slotID, actorID)
			handlers.RespondConflict(w, "ALREADY_TAKEN", msgAlreadyTaken)

		case errors.Is(err, claimSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{slot_id}/claim - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidSlotID)

		default:
			h.logger.Error("POST /slots/{slot_id}/claim - Failed to claim: slot=%s, actor=%s, error=%v",
				slotID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{slot_id}/claim - Slot claimed: slot=%s, actor=%s", slotID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
