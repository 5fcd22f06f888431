package services

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
)

// rateService is the read-only controller over vendor rate lists.
type rateService struct {
	BaseService
	repo  portsrepo.RateRepositoryFacade
	cache portssvc.ReferenceSvcFacade
}

// NewRateService creates the rate-list view service.
func NewRateService(repo portsrepo.RateRepositoryFacade, cache portssvc.ReferenceSvcFacade) portssvc.RateSvcFacade {
	return &rateService{repo: repo, cache: cache}
}

func (s *rateService) ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.FreightRate, int, error) {
	rates, count, err := s.repo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list freight rates")
		return nil, 0, err
	}

	view := listquery.Apply(rates, filters, sortSpec, s.cache.Snapshot())

	byKind := make(map[domain.EntityKind][]string)
	for _, r := range view {
		byKind[domain.KindVendor] = append(byKind[domain.KindVendor], r.VendorID)
		byKind[domain.KindDestination] = append(byKind[domain.KindDestination], r.DestinationID)
		byKind[domain.KindCurrency] = append(byKind[domain.KindCurrency], r.CurrencyID)
	}
	for kind, ids := range byKind {
		s.cache.ResolveMany(ctx, kind, ids)
	}
	return view, count, nil
}
