package get_facilities

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
	"github.com/eklokale/RoomBookingService/internal/domain"
)

// FacilityResponse HTTP модель помещения
type FacilityResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Capacity     *string   `json:"capacity,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Floor        *string   `json:"floor,omitempty"`
	FacilityType *string   `json:"facilityType,omitempty"`
	Category     string    `json:"category"`
	TeacherOnly  bool      `json:"teacherOnly"`
}

// FacilityListResponse список помещений
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}

type Handler struct {
	service FacilitiesService
	logger  Logger
}

func NewHandler(service FacilitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, fromDomain(f))
	}

	handlers.RespondJSON(w, http.StatusOK, &FacilityListResponse{Facilities: out, Total: len(out)})
}

func fromDomain(f *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:           f.ID,
		Title:        f.Title,
		Capacity:     f.Capacity,
		Description:  f.Description,
		Floor:        f.Floor,
		FacilityType: f.FacilityType,
		Category:     string(f.Category()),
		TeacherOnly:  f.TeacherOnly(),
	}
}
