package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	StockRepo     StockRepositoryFacade
	OrderRepo     ShippingOrderRepositoryFacade
	VesselRepo    VesselRepositoryFacade
	RateRepo      RateRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
	ReferenceRepo ReferenceRepositoryFacade
	AuditRepo     AuditLogRepositoryFacade
}
