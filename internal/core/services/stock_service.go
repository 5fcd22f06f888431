package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/bulk"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// stockService owns the in-memory stock collection and the per-operation
// state machine. Each operation kind (list, create, update, delete) is
// independently Idle/Pending/Succeeded/Failed with its own error string;
// starting an operation clears only its own kind's previous error.
type stockService struct {
	BaseService
	repo  portsrepo.StockRepositoryFacade
	cache portssvc.ReferenceSvcFacade

	mu    sync.RWMutex
	items []domain.StockItem
	count int
	ops   map[domain.OperationKind]domain.OperationState
}

// NewStockService creates the stock resource controller.
func NewStockService(repo portsrepo.StockRepositoryFacade, cache portssvc.ReferenceSvcFacade) portssvc.StockSvcFacade {
	return &stockService{
		repo:  repo,
		cache: cache,
		ops:   make(map[domain.OperationKind]domain.OperationState),
	}
}

func (s *stockService) begin(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind] = domain.OperationState{Status: domain.OpPending}
}

func (s *stockService) finish(kind domain.OperationKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.ops[kind] = domain.OperationState{Status: domain.OpFailed, Error: err.Error()}
		return
	}
	s.ops[kind] = domain.OperationState{Status: domain.OpSucceeded}
}

// OperationState reports one operation kind's state machine.
func (s *stockService) OperationState(kind domain.OperationKind) domain.OperationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.ops[kind]
	if !ok {
		return domain.OperationState{Status: domain.OpIdle}
	}
	return state
}

// ClearOperationError resets one kind's recorded error back to Idle.
func (s *stockService) ClearOperationError(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind] = domain.OperationState{Status: domain.OpIdle}
}

// refresh replaces the collection wholesale. On failure the last-known-
// good collection is preserved and only the list error is recorded.
func (s *stockService) refresh(ctx context.Context) error {
	s.begin(domain.OpList)
	items, count, err := s.repo.ListStockItems(ctx)
	s.finish(domain.OpList, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock items")
		return err
	}
	s.mu.Lock()
	s.items = items
	s.count = count
	s.mu.Unlock()
	return nil
}

// ListView refetches, then filters and sorts against a cache snapshot,
// and finally warms the cache for every foreign key in the visible rows.
func (s *stockService) ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, 0, err
	}
	view, count := s.CachedView(filters, sortSpec)
	s.warmReferences(ctx, view)
	return view, count, nil
}

// CachedView applies the spec to the last-known-good collection.
func (s *stockService) CachedView(filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int) {
	s.mu.RLock()
	items := make([]domain.StockItem, len(s.items))
	copy(items, s.items)
	count := s.count
	s.mu.RUnlock()
	return listquery.Apply(items, filters, sortSpec, s.cache.Snapshot()), count
}

// warmReferences batch-resolves every foreign key the view will render.
func (s *stockService) warmReferences(ctx context.Context, items []domain.StockItem) {
	byKind := make(map[domain.EntityKind][]string)
	for _, item := range items {
		byKind[domain.KindCustomer] = append(byKind[domain.KindCustomer], item.ClientID)
		byKind[domain.KindVessel] = append(byKind[domain.KindVessel], item.VesselID)
		byKind[domain.KindLocation] = append(byKind[domain.KindLocation], item.WarehouseID)
		byKind[domain.KindCurrency] = append(byKind[domain.KindCurrency], item.CurrencyID)
	}
	for kind, ids := range byKind {
		s.cache.ResolveMany(ctx, kind, ids)
	}
}

// CreateStockItem persists a new item upstream and prepends the stored
// record to the in-memory collection without waiting for a refetch.
func (s *stockService) CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*domain.StockItem, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	s.begin(domain.OpCreate)
	created, err := s.repo.CreateStockItem(ctx, domain.StockItem{
		ItemName:    req.ItemName,
		ClientID:    req.ClientID,
		VesselID:    req.VesselID,
		WarehouseID: req.WarehouseID,
		CurrencyID:  req.CurrencyID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Status:      req.Status,
		ReceivedAt:  time.Now(),
	})
	s.finish(domain.OpCreate, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to create stock item")
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]domain.StockItem{*created}, s.items...)
	s.count++
	s.mu.Unlock()

	s.LogInfo(ctx, "Stock item created", slog.String("stock_id", created.StockID))
	return created, nil
}

// UpdateStockItem replaces the identified item upstream and merges the
// stored record into the collection by id.
func (s *stockService) UpdateStockItem(ctx context.Context, stockID string, req dto.UpdateStockItemRequest) (*domain.StockItem, error) {
	if stockID == "" {
		return nil, fmt.Errorf("%w: stock id is required", apperrors.ErrValidation)
	}

	s.begin(domain.OpUpdate)
	updated, err := s.repo.UpdateStockItem(ctx, stockID, domain.StockItem{
		StockID:     stockID,
		ItemName:    req.ItemName,
		ClientID:    req.ClientID,
		VesselID:    req.VesselID,
		WarehouseID: req.WarehouseID,
		CurrencyID:  req.CurrencyID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Status:      req.Status,
	})
	s.finish(domain.OpUpdate, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to update stock item", slog.String("stock_id", stockID))
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].StockID == stockID {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteStockItem removes the item upstream and filters it out of the
// collection.
func (s *stockService) DeleteStockItem(ctx context.Context, stockID string) error {
	if stockID == "" {
		return fmt.Errorf("%w: stock id is required", apperrors.ErrValidation)
	}

	s.begin(domain.OpDelete)
	err := s.repo.DeleteStockItem(ctx, stockID)
	s.finish(domain.OpDelete, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete stock item", slog.String("stock_id", stockID))
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.StockID != stockID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if s.count > 0 {
		s.count--
	}
	s.mu.Unlock()

	return nil
}

// BulkUpdateStockItems applies one patch across the selection with
// all-settled semantics: every id is attempted regardless of sibling
// failures. The caller refetches when the batch reports successes.
func (s *stockService) BulkUpdateStockItems(ctx context.Context, req dto.BulkUpdateStockRequest) (domain.BulkBatch, error) {
	current := make(map[string]domain.StockItem, len(req.IDs))
	s.mu.RLock()
	for _, item := range s.items {
		current[item.StockID] = item
	}
	s.mu.RUnlock()

	batch, err := bulk.Run(ctx, req.IDs, identity, func(ctx context.Context, id string) error {
		item, ok := current[id]
		if !ok {
			return fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, id)
		}
		patched := applyStockPatch(item, req.Patch)
		_, err := s.UpdateStockItem(ctx, id, dto.UpdateStockItemRequest{
			ItemName:    patched.ItemName,
			ClientID:    patched.ClientID,
			VesselID:    patched.VesselID,
			WarehouseID: patched.WarehouseID,
			CurrencyID:  patched.CurrencyID,
			Quantity:    patched.Quantity,
			UnitPrice:   patched.UnitPrice,
			Status:      patched.Status,
		})
		return err
	}, bulk.Continue)
	if err != nil {
		return batch, err
	}

	s.LogInfo(ctx, "Bulk stock update finished",
		slog.Int("succeeded", batch.SuccessCount),
		slog.Int("failed", batch.FailureCount),
	)
	return batch, nil
}

// BulkDeleteStockItems deletes the selection with all-settled semantics.
func (s *stockService) BulkDeleteStockItems(ctx context.Context, ids []string) (domain.BulkBatch, error) {
	batch, err := bulk.Run(ctx, ids, identity, func(ctx context.Context, id string) error {
		return s.DeleteStockItem(ctx, id)
	}, bulk.Continue)
	if err != nil {
		return batch, err
	}

	s.LogInfo(ctx, "Bulk stock delete finished",
		slog.Int("succeeded", batch.SuccessCount),
		slog.Int("failed", batch.FailureCount),
	)
	return batch, nil
}

func applyStockPatch(item domain.StockItem, patch dto.StockItemPatch) domain.StockItem {
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.VesselID != nil {
		item.VesselID = *patch.VesselID
	}
	if patch.WarehouseID != nil {
		item.WarehouseID = *patch.WarehouseID
	}
	return item
}

func identity(id string) string { return id }
