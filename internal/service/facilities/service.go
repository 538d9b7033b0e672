package facilities

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

const cacheKeyAll = "facilities:all"

// Service сервис справочника помещений.
// Справочник меняется редко, а читается на каждый запрос доступности,
// поэтому список держится в кеше с коротким TTL.
type Service struct {
	repo   FacilityRepository
	cache  *gocache.Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса помещений
func NewService(repo FacilityRepository, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// List получает все помещения, при попадании в кеш без похода в БД
func (s *Service) List(ctx context.Context) ([]*domain.Facility, error) {
	if cached, ok := s.cache.Get(cacheKeyAll); ok {
		return cached.([]*domain.Facility), nil
	}

	facilities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.cache.Set(cacheKeyAll, facilities, gocache.DefaultExpiration)
	s.logger.Info("List: cached %d facilities", len(facilities))

	return facilities, nil
}

// Invalidate сбрасывает кеш справочника
func (s *Service) Invalidate() {
	s.cache.Delete(cacheKeyAll)
}
