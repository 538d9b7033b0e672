package claim_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eklokale/RoomBookingService/internal/domain"
	slotRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
	roleClient "github.com/eklokale/RoomBookingService/internal/integrations/userservice"
	"github.com/eklokale/RoomBookingService/internal/rules"
)

// UseCase use case для занятия слота
type UseCase struct {
	slotRepo     SlotRepository
	roleResolver RoleResolver
	engine       rules.Engine
	loc          *time.Location
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	roleResolver RoleResolver,
	engine rules.Engine,
	loc *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		roleResolver: roleResolver,
		engine:       engine,
		loc:          loc,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case занятия слота.
// Проверка правил идёт по прочитанному снимку слота, а сама запись
// повторяет предусловие снимка в условном UPDATE. Если между чтением и
// записью слот изменился, запись промахивается и возвращается
// ErrAlreadyTaken, без блокировок и транзакций.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClaimSlot: slot=%s, actor=%s", req.SlotID, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ClaimSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем роль актёра
	actorRole, err := uc.roleResolver.GetRole(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, roleClient.ErrRoleNotFound) {
			uc.logger.Warn("ClaimSlot: actor=%s has no role", req.ActorID)
			return nil, ErrRoleMissing
		}
		uc.logger.Error("ClaimSlot: failed to resolve role for actor=%s: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to resolve actor role: %v", ErrInternal, err)
	}

	// 3. Читаем снимок слота
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ClaimSlot: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ClaimSlot: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 4. Если слот занят, нужна роль текущего владельца
	var ownerRole domain.Role
	if slot.IsOccupied() && slot.Owner != nil {
		ownerRole, err = uc.roleResolver.GetRole(ctx, *slot.Owner)
		if err != nil {
			if errors.Is(err, roleClient.ErrRoleNotFound) {
				uc.logger.Warn("ClaimSlot: owner=%s of slot=%s has no role", *slot.Owner, req.SlotID)
				return nil, ErrRoleMissing
			}
			uc.logger.Error("ClaimSlot: failed to resolve role for owner=%s: %v", *slot.Owner, err)
			return nil, fmt.Errorf("%w: failed to resolve owner role: %v", ErrInternal, err)
		}
	}

	// 5. Собираем факты о дне актёра
	from, to := uc.dayWindow(slot.StartsAt)

	owned, err := uc.slotRepo.ListOwnedForDay(ctx, req.ActorID, from, to)
	if err != nil {
		uc.logger.Error("ClaimSlot: failed to list actor bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list actor bookings: %v", ErrInternal, err)
	}

	facts := rules.ClaimFacts{
		ActorID:     req.ActorID,
		ActorRole:   actorRole,
		SlotState:   slot.State,
		OwnerID:     slot.Owner,
		OwnerRole:   ownerRole,
		SlotMinutes: slot.DurationMinutes(uc.engine.DefaultSlotMinutes),
	}

	for _, s := range owned {
		if s.ID == slot.ID {
			continue
		}
		facts.BookedMinutes += s.DurationMinutes(uc.engine.DefaultSlotMinutes)
		if s.FacilityID != slot.FacilityID {
			facts.OwnsOtherFacility = true
		}
	}

	// 6. Решение движка правил
	if err := uc.engine.CanClaim(facts); err != nil {
		uc.logger.Warn("ClaimSlot: denied for actor=%s, slot=%s: %v", req.ActorID, req.SlotID, err)
		uc.metrics.RecordOutcome("claim", "denied")
		return nil, mapRuleError(err)
	}

	// 7. Условная запись с предусловием из прочитанного снимка
	claimed, err := uc.slotRepo.ClaimIfState(ctx, slot.ID, slot.State, slot.Owner, req.ActorID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrConflict) {
			uc.logger.Warn("ClaimSlot: lost the race for slot=%s", req.SlotID)
			uc.metrics.RecordOutcome("claim", "conflict")
			return nil, ErrAlreadyTaken
		}
		uc.logger.Error("ClaimSlot: failed to claim slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}

	uc.logger.Info("ClaimSlot: actor=%s claimed slot=%s", req.ActorID, req.SlotID)
	uc.metrics.RecordOutcome("claim", "success")

	return &Response{
		ID:           claimed.ID,
		FacilityID:   claimed.FacilityID,
		Title:        claimed.Title,
		StartsAt:     claimed.StartsAt,
		EndsAt:       claimed.EndsAt,
		State:        string(claimed.State),
		Owner:        claimed.Owner,
		WasAvailable: slot.IsAvailable(),
		UpdatedAt:    claimed.UpdatedAt,
	}, nil
}

// dayWindow возвращает границы календарного дня [from, to) в настроенной таймзоне
func (uc *UseCase) dayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.In(uc.loc).Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, uc.loc)
	return from, from.AddDate(0, 0, 1)
}

// mapRuleError переводит вердикт движка правил в ошибку usecase
func mapRuleError(err error) error {
	switch {
	case errors.Is(err, rules.ErrStudentCannotOverride):
		return ErrStudentCannotOverride
	case errors.Is(err, rules.ErrTeacherCannotOverrideTeacher):
		return ErrTeacherCannotOverride
	case errors.Is(err, rules.ErrAlreadyOwned):
		return ErrAlreadyOwned
	case errors.Is(err, rules.ErrMaxHoursExceeded):
		return ErrMaxHoursExceeded
	case errors.Is(err, rules.ErrMultiFacilityNotAllowed):
		return ErrMultiFacilityNotAllowed
	default:
		return fmt.Errorf("%w: unexpected rule verdict: %v", ErrInternal, err)
	}
}
