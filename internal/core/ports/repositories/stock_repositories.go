package repositories

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// StockRepositoryFacade is the upstream boundary for stock records.
// Implementations normalize the backend's envelope and field-name drift;
// every error they return wraps apperrors.ErrUpstream and carries the
// user-facing message as its Error() text.
type StockRepositoryFacade interface {
	// ListStockItems fetches the full denormalized stock collection and
	// the backend-reported total count.
	ListStockItems(ctx context.Context) ([]domain.StockItem, int, error)

	// CreateStockItem persists a new stock item and returns the record
	// the backend stored.
	CreateStockItem(ctx context.Context, item domain.StockItem) (*domain.StockItem, error)

	// UpdateStockItem replaces the identified stock item.
	UpdateStockItem(ctx context.Context, stockID string, item domain.StockItem) (*domain.StockItem, error)

	// DeleteStockItem removes the identified stock item.
	DeleteStockItem(ctx context.Context, stockID string) error
}
