package services

import (
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Initialize the reference cache first since the resource services
	// resolve display names through it
	container.Reference = NewReferenceCacheService(repos.ReferenceRepo)

	container.Stock = NewStockService(repos.StockRepo, container.Reference)
	container.Order = NewShippingOrderService(repos.OrderRepo, container.Reference)
	container.Vessel = NewVesselService(repos.VesselRepo, container.Reference)
	container.Rate = NewRateService(repos.RateRepo, container.Reference)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Audit = NewAuditService(repos.AuditRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StockSvcFacade     = (*stockService)(nil)
	_ portssvc.OrderSvcFacade     = (*shippingOrderService)(nil)
	_ portssvc.ReferenceSvcFacade = (*ReferenceCacheService)(nil)
	_ portssvc.AuditSvcFacade     = (*auditService)(nil)
)
