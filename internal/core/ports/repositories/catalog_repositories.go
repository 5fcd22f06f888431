package repositories

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// VesselRepositoryFacade is the upstream boundary for the fleet registry.
type VesselRepositoryFacade interface {
	ListVessels(ctx context.Context) ([]domain.Vessel, int, error)
}

// RateRepositoryFacade is the upstream boundary for vendor rate lists.
type RateRepositoryFacade interface {
	ListRates(ctx context.Context) ([]domain.FreightRate, int, error)
}

// CustomerRepositoryFacade covers the customer sub-resources the console
// mutates directly.
type CustomerRepositoryFacade interface {
	CreateContactPerson(ctx context.Context, customerID string, person domain.ContactPerson) (*domain.ContactPerson, error)
}
