package services

import (
	"context"
	"sync"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
)

// vesselService is the read-only controller over the fleet registry.
type vesselService struct {
	BaseService
	repo  portsrepo.VesselRepositoryFacade
	cache portssvc.ReferenceSvcFacade

	mu      sync.RWMutex
	vessels []domain.Vessel
	count   int
}

// NewVesselService creates the fleet view service.
func NewVesselService(repo portsrepo.VesselRepositoryFacade, cache portssvc.ReferenceSvcFacade) portssvc.VesselSvcFacade {
	return &vesselService{repo: repo, cache: cache}
}

func (s *vesselService) ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.Vessel, int, error) {
	vessels, count, err := s.repo.ListVessels(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vessels")
		return nil, 0, err
	}
	s.mu.Lock()
	s.vessels = vessels
	s.count = count
	s.mu.Unlock()

	return listquery.Apply(vessels, filters, sortSpec, s.cache.Snapshot()), count, nil
}
