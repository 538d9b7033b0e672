package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	"github.com/eklokale/RoomBookingService/internal/domain"
	getAvailability "github.com/eklokale/RoomBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate = "Ugyldig dato, forventet format er YYYY-MM-DD."
)

type Handler struct {
	useCase      GetAvailabilityUseCase
	roleResolver RoleResolver
	logger       Logger
}

func NewHandler(useCase GetAvailabilityUseCase, roleResolver RoleResolver, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		roleResolver: roleResolver,
		logger:       logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD[&mode=teacher]
// Маршрут публичный: без X-User-ID или без распознанной роли отдаётся
// студенческий вид, он самый ограниченный. mode=teacher запрашивает
// нефильтрованный преподавательский вид без аутентификации; картина дня
// не содержит ничего секретного, занятость видна и в студенческом виде
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		rawDate = time.Now().Format(domain.DateFormat)
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidDate)
		return
	}

	actorID, role := h.resolveActor(r)

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:    date,
		ActorID: actorID,
		Role:    role,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) resolveActor(r *http.Request) (uuid.UUID, domain.Role) {
	actorID := uuid.Nil
	if raw := r.Header.Get("X-User-ID"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			actorID = parsed
		}
	}

	// Явный запрос преподавательского вида
	if r.URL.Query().Get("mode") == "teacher" {
		return actorID, domain.RoleTeacher
	}

	if actorID == uuid.Nil {
		return uuid.Nil, domain.RoleStudent
	}

	role, err := h.roleResolver.GetRole(r.Context(), actorID)
	if err != nil {
		h.logger.Warn("GET /availability - Failed to resolve role for %s, falling back to student view: %v", actorID, err)
		return actorID, domain.RoleStudent
	}

	return actorID, role
}
