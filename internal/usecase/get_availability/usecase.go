package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// UseCase use case для получения доступности на день
type UseCase struct {
	slotRepo   SlotRepository
	facilities FacilityProvider
	loc        *time.Location
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	facilities FacilityProvider,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:   slotRepo,
		facilities: facilities,
		loc:        loc,
		logger:     logger,
	}
}

// Execute возвращает картину дня, отфильтрованную по роли.
// Студент видит только свободные слоты в доступных ему помещениях.
// Преподаватель видит все слоты во всех помещениях, разложенные
// по категориям: общие, учебные, open learning.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, actor=%s, role=%s",
		req.Date.Format(domain.DateFormat), req.ActorID, req.Role)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Role != domain.RoleStudent && req.Role != domain.RoleTeacher {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	year, month, day := req.Date.In(uc.loc).Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, uc.loc)
	to := from.AddDate(0, 0, 1)

	slots, err := uc.slotRepo.ListForDay(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	facilities, err := uc.facilities.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list facilities: %v", err)
		return nil, fmt.Errorf("%w: failed to list facilities: %v", ErrInternal, err)
	}

	collator := newCollator()
	sortFacilities(collator, facilities)
	byFacility := groupSlotsByFacility(slots)

	var groups []Group
	if req.Role == domain.RoleStudent {
		groups = uc.studentGroups(facilities, byFacility, req)
	} else {
		groups = uc.teacherGroups(facilities, byFacility, req)
	}

	uc.logger.Info("GetAvailability: date=%s, %d slots across %d facilities",
		from.Format(domain.DateFormat), len(slots), len(facilities))

	return &Response{
		Date:   from.Format(domain.DateFormat),
		Groups: groups,
	}, nil
}

// studentGroups показывает студенту одну группу свободных слотов.
// Помещения только для преподавателей и помещения без свободных
// слотов в этот день опускаются целиком.
func (uc *UseCase) studentGroups(
	facilities []*domain.Facility,
	byFacility map[uuid.UUID][]*domain.Slot,
	req *Request,
) []Group {
	group := Group{Category: GroupAvailable, Facilities: make([]FacilitySlots, 0)}

	for _, f := range facilities {
		if f.TeacherOnly() {
			continue
		}
		free := onlyAvailable(byFacility[f.ID])
		if len(free) == 0 {
			continue
		}
		group.Facilities = append(group.Facilities, buildFacilitySlots(f, free, req.ActorID))
	}

	return []Group{group}
}

// teacherGroups раскладывает все помещения по категориям
func (uc *UseCase) teacherGroups(
	facilities []*domain.Facility,
	byFacility map[uuid.UUID][]*domain.Slot,
	req *Request,
) []Group {
	grouped := map[domain.FacilityCategory][]FacilitySlots{}

	for _, f := range facilities {
		category := f.Category()
		// Помещения, помеченные преподавательскими только в описании,
		// относятся к учебной группе, а не к общей
		if category == domain.CategoryShared && f.TeacherOnly() {
			category = domain.CategoryTeaching
		}
		grouped[category] = append(grouped[category], buildFacilitySlots(f, byFacility[f.ID], req.ActorID))
	}

	return []Group{
		{Category: GroupShared, Facilities: orEmpty(grouped[domain.CategoryShared])},
		{Category: GroupTeaching, Facilities: orEmpty(grouped[domain.CategoryTeaching])},
		{Category: GroupOpenLearning, Facilities: orEmpty(grouped[domain.CategoryOpenLearning])},
	}
}

func orEmpty(list []FacilitySlots) []FacilitySlots {
	if list == nil {
		return make([]FacilitySlots, 0)
	}
	return list
}
