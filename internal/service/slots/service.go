package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
	facilityRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/facility"
	slotRepo "github.com/eklokale/RoomBookingService/internal/infra/storage/slot"
	"github.com/eklokale/RoomBookingService/internal/service/slots/models"
)

// Service сервис для чтения слотов и бронирований
type Service struct {
	slotRepo     SlotRepository
	facilityRepo FacilityRepository
	loc          *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	facilityRepo FacilityRepository,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		facilityRepo: facilityRepo,
		loc:          loc,
		logger:       logger,
	}
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%s", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// GetActorBookings получает бронирования пользователя на календарный день
func (s *Service) GetActorBookings(ctx context.Context, actorID uuid.UUID, date time.Time) (*models.SlotListResponse, error) {
	s.logger.Info("GetActorBookings: actor=%s, date=%s", actorID, date.Format("2006-01-02"))

	if actorID == uuid.Nil {
		return nil, fmt.Errorf("%w: actor_id is required", ErrInvalidInput)
	}

	year, month, day := date.In(s.loc).Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 0, 1)

	owned, err := s.slotRepo.ListOwnedForDay(ctx, actorID, from, to)
	if err != nil {
		s.logger.Error("GetActorBookings: repository error for actor=%s: %v", actorID, err)
		return nil, fmt.Errorf("%w: GetActorBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(owned), nil
}

// GetFacility получает помещение по ID
func (s *Service) GetFacility(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetFacility - repository error: %v", ErrInternal, err)
	}

	return facility, nil
}
