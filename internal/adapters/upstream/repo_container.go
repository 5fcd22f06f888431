package upstream

import (
	"net/http"

	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	"github.com/harbourline/freight_console_app/internal/platform/config"
)

// NewRepositoryProvider wires every repository port to one shared
// backend client.
func NewRepositoryProvider(cfg *config.Config) repositories.RepositoryProvider {
	client := NewClient(cfg.UpstreamBaseURL, &http.Client{
		Timeout: cfg.UpstreamTimeout,
	})
	return repositories.RepositoryProvider{
		StockRepo:     NewStockRepository(client),
		OrderRepo:     NewShippingOrderRepository(client),
		VesselRepo:    NewVesselRepository(client),
		RateRepo:      NewRateRepository(client),
		CustomerRepo:  NewCustomerRepository(client),
		ReferenceRepo: NewReferenceRepository(client),
		AuditRepo:     NewAuditLogRepository(client),
	}
}
