package get_availability

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// newCollator возвращает коллатор для названий помещений.
// Датские буквы (æ, ø, å) и числа в названиях ("Lokale 2" перед
// "Lokale 10") сортируются так, как их видит пользователь.
func newCollator() *collate.Collator {
	return collate.New(language.Danish, collate.Numeric)
}

// sortFacilities сортирует помещения: этаж по возрастанию (без
// распознанного этажа в конец), затем название
func sortFacilities(c *collate.Collator, facilities []*domain.Facility) {
	sort.SliceStable(facilities, func(i, j int) bool {
		fi, iOK := facilities[i].FloorNumber()
		fj, jOK := facilities[j].FloorNumber()

		if iOK != jOK {
			return iOK
		}
		if iOK && fi != fj {
			return fi < fj
		}
		return c.CompareString(facilities[i].Title, facilities[j].Title) < 0
	})
}

// groupSlotsByFacility раскладывает слоты дня по помещениям, слоты
// внутри помещения отсортированы по началу
func groupSlotsByFacility(slots []*domain.Slot) map[uuid.UUID][]*domain.Slot {
	byFacility := make(map[uuid.UUID][]*domain.Slot)
	for _, s := range slots {
		byFacility[s.FacilityID] = append(byFacility[s.FacilityID], s)
	}
	for _, list := range byFacility {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StartsAt.Before(list[j].StartsAt)
		})
	}
	return byFacility
}

// buildFacilitySlots собирает представление помещения с его слотами
func buildFacilitySlots(f *domain.Facility, slots []*domain.Slot, actorID uuid.UUID) FacilitySlots {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			ID:           s.ID,
			Title:        s.Title,
			StartsAt:     s.StartsAt,
			EndsAt:       s.EndsAt,
			State:        string(s.State),
			Owner:        s.Owner,
			OwnedByActor: s.OwnedBy(actorID),
		})
	}

	return FacilitySlots{
		ID:           f.ID,
		Title:        f.Title,
		Capacity:     f.Capacity,
		Description:  f.Description,
		Floor:        f.Floor,
		FacilityType: f.FacilityType,
		Slots:        views,
	}
}

// onlyAvailable оставляет из слотов помещения только свободные
func onlyAvailable(slots []*domain.Slot) []*domain.Slot {
	out := make([]*domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsAvailable() {
			out = append(out, s)
		}
	}
	return out
}
