package services

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// StockReaderSvc defines read operations over the stock collection.
type StockReaderSvc interface {
	// ListView refetches the collection from the backend, then applies
	// the filter/sort spec against a point-in-time cache snapshot. The
	// returned count is the backend total, not the filtered length.
	ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int, error)

	// CachedView applies the spec to the last-known-good collection
	// without contacting the backend.
	CachedView(filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int)

	// OperationState reports the state machine of one operation kind.
	OperationState(kind domain.OperationKind) domain.OperationState
}

// StockWriterSvc defines mutations over the stock collection. Successful
// single mutations merge optimistically into the in-memory collection;
// bulk runs leave resynchronization to the caller.
type StockWriterSvc interface {
	CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*domain.StockItem, error)
	UpdateStockItem(ctx context.Context, stockID string, req dto.UpdateStockItemRequest) (*domain.StockItem, error)
	DeleteStockItem(ctx context.Context, stockID string) error

	// BulkUpdateStockItems applies one patch across a selection with
	// all-settled semantics.
	BulkUpdateStockItems(ctx context.Context, req dto.BulkUpdateStockRequest) (domain.BulkBatch, error)

	// BulkDeleteStockItems deletes a selection with all-settled semantics.
	BulkDeleteStockItems(ctx context.Context, ids []string) (domain.BulkBatch, error)

	// ClearOperationError resets one operation kind's recorded error.
	// Clearing is always explicit, never a side effect of another kind's
	// operation.
	ClearOperationError(kind domain.OperationKind)
}

// StockSvcFacade combines all stock-related service interfaces.
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
