package services

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// OrderReaderSvc defines read operations over the shipping-order
// collection.
type OrderReaderSvc interface {
	ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.ShippingOrder, int, error)
	CachedView(filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.ShippingOrder, int)
	OperationState(kind domain.OperationKind) domain.OperationState
}

// OrderWriterSvc defines mutations over the shipping-order collection.
type OrderWriterSvc interface {
	CreateShippingOrder(ctx context.Context, req dto.CreateShippingOrderRequest) (*domain.ShippingOrder, error)
	UpdateShippingOrder(ctx context.Context, orderID string, req dto.UpdateShippingOrderRequest) (*domain.ShippingOrder, error)
	DeleteShippingOrder(ctx context.Context, orderID string) error
	BulkDeleteShippingOrders(ctx context.Context, ids []string) (domain.BulkBatch, error)
	ClearOperationError(kind domain.OperationKind)
}

// OrderSvcFacade combines all shipping-order service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
