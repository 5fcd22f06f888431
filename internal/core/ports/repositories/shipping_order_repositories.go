package repositories

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// ShippingOrderRepositoryFacade is the upstream boundary for shipping
// orders.
type ShippingOrderRepositoryFacade interface {
	ListShippingOrders(ctx context.Context) ([]domain.ShippingOrder, int, error)
	CreateShippingOrder(ctx context.Context, order domain.ShippingOrder) (*domain.ShippingOrder, error)
	UpdateShippingOrder(ctx context.Context, orderID string, order domain.ShippingOrder) (*domain.ShippingOrder, error)
	DeleteShippingOrder(ctx context.Context, orderID string) error
}
