package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FacilityCategory groups facilities for the availability view
type FacilityCategory string

const (
	CategoryShared       FacilityCategory = "shared"
	CategoryTeaching     FacilityCategory = "teaching"
	CategoryOpenLearning FacilityCategory = "open_learning"
)

// Facility represents static room metadata. The rows are owned by an
// external administration process; this service only reads them.
type Facility struct {
	ID           uuid.UUID
	Title        string
	Capacity     *string // free-form, e.g. "2-4 pers"
	Description  *string
	Floor        *string // free-form, usually a digit
	FacilityType *string // "undervisning", "open learning", or empty for shared

	CreatedAt time.Time
}

// Category maps the raw facility_type onto the three availability groups
func (f *Facility) Category() FacilityCategory {
	if f.FacilityType == nil {
		return CategoryShared
	}
	switch strings.ToLower(strings.TrimSpace(*f.FacilityType)) {
	case "undervisning":
		return CategoryTeaching
	case "open learning":
		return CategoryOpenLearning
	default:
		return CategoryShared
	}
}

// TeacherOnly returns true if students must never see this facility: either
// the category is restricted, or the description carries the teacher-only
// marker used by the administration ("kun lærere" / "kun laerere").
func (f *Facility) TeacherOnly() bool {
	if f.Category() != CategoryShared {
		return true
	}
	if f.Description == nil {
		return false
	}
	desc := strings.ToLower(*f.Description)
	return strings.Contains(desc, "kun lærere") || strings.Contains(desc, "kun laerere")
}

// FloorNumber parses the free-form floor field. Facilities without a
// parseable floor sort after all numbered floors.
func (f *Facility) FloorNumber() (int, bool) {
	if f.Floor == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(*f.Floor))
	if err != nil {
		return 0, false
	}
	return n, true
}
