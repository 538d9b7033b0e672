package get_my_bookings

import (
	"net/http"
	"time"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	"github.com/eklokale/RoomBookingService/internal/api/middleware"
	"github.com/eklokale/RoomBookingService/internal/domain"
)

const (
	msgInvalidDate = "Ugyldig dato, forventet format er YYYY-MM-DD."
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

// Handle GET /api/v1/bookings/my?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "LOGIN_REQUIRED", "Du skal være logget ind.")
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		rawDate = time.Now().Format(domain.DateFormat)
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /bookings/my - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, "INVALID_REQUEST", msgInvalidDate)
		return
	}

	result, err := h.service.GetActorBookings(r.Context(), actorID, date)
	if err != nil {
		h.logger.Error("GET /bookings/my - Failed: actor=%s, error=%v", actorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
