package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/bulk"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// shippingOrderService is the resource controller for shipping orders.
// Same per-operation state machine and optimistic-merge discipline as
// the stock controller.
type shippingOrderService struct {
	BaseService
	repo  portsrepo.ShippingOrderRepositoryFacade
	cache portssvc.ReferenceSvcFacade

	mu     sync.RWMutex
	orders []domain.ShippingOrder
	count  int
	ops    map[domain.OperationKind]domain.OperationState
}

// NewShippingOrderService creates the shipping-order resource controller.
func NewShippingOrderService(repo portsrepo.ShippingOrderRepositoryFacade, cache portssvc.ReferenceSvcFacade) portssvc.OrderSvcFacade {
	return &shippingOrderService{
		repo:  repo,
		cache: cache,
		ops:   make(map[domain.OperationKind]domain.OperationState),
	}
}

func (s *shippingOrderService) begin(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind] = domain.OperationState{Status: domain.OpPending}
}

func (s *shippingOrderService) finish(kind domain.OperationKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.ops[kind] = domain.OperationState{Status: domain.OpFailed, Error: err.Error()}
		return
	}
	s.ops[kind] = domain.OperationState{Status: domain.OpSucceeded}
}

func (s *shippingOrderService) OperationState(kind domain.OperationKind) domain.OperationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.ops[kind]
	if !ok {
		return domain.OperationState{Status: domain.OpIdle}
	}
	return state
}

func (s *shippingOrderService) ClearOperationError(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind] = domain.OperationState{Status: domain.OpIdle}
}

func (s *shippingOrderService) refresh(ctx context.Context) error {
	s.begin(domain.OpList)
	orders, count, err := s.repo.ListShippingOrders(ctx)
	s.finish(domain.OpList, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shipping orders")
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.count = count
	s.mu.Unlock()
	return nil
}

func (s *shippingOrderService) ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.ShippingOrder, int, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, 0, err
	}
	view, count := s.CachedView(filters, sortSpec)
	s.warmReferences(ctx, view)
	return view, count, nil
}

func (s *shippingOrderService) CachedView(filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.ShippingOrder, int) {
	s.mu.RLock()
	orders := make([]domain.ShippingOrder, len(s.orders))
	copy(orders, s.orders)
	count := s.count
	s.mu.RUnlock()
	return listquery.Apply(orders, filters, sortSpec, s.cache.Snapshot()), count
}

func (s *shippingOrderService) warmReferences(ctx context.Context, orders []domain.ShippingOrder) {
	byKind := make(map[domain.EntityKind][]string)
	for _, o := range orders {
		byKind[domain.KindCustomer] = append(byKind[domain.KindCustomer], o.ClientID)
		byKind[domain.KindVessel] = append(byKind[domain.KindVessel], o.VesselID)
		byKind[domain.KindDestination] = append(byKind[domain.KindDestination], o.DestinationID)
		byKind[domain.KindCurrency] = append(byKind[domain.KindCurrency], o.CurrencyID)
	}
	for kind, ids := range byKind {
		s.cache.ResolveMany(ctx, kind, ids)
	}
}

func (s *shippingOrderService) CreateShippingOrder(ctx context.Context, req dto.CreateShippingOrderRequest) (*domain.ShippingOrder, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	s.begin(domain.OpCreate)
	created, err := s.repo.CreateShippingOrder(ctx, domain.ShippingOrder{
		OrderNumber:   req.OrderNumber,
		ClientID:      req.ClientID,
		VesselID:      req.VesselID,
		DestinationID: req.DestinationID,
		CurrencyID:    req.CurrencyID,
		Quantity:      req.Quantity,
		FreightAmount: req.FreightAmount,
		Status:        req.Status,
		ShipDate:      req.ShipDate,
	})
	s.finish(domain.OpCreate, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to create shipping order")
		return nil, err
	}

	s.mu.Lock()
	s.orders = append([]domain.ShippingOrder{*created}, s.orders...)
	s.count++
	s.mu.Unlock()

	s.LogInfo(ctx, "Shipping order created", slog.String("order_id", created.OrderID))
	return created, nil
}

func (s *shippingOrderService) UpdateShippingOrder(ctx context.Context, orderID string, req dto.UpdateShippingOrderRequest) (*domain.ShippingOrder, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", apperrors.ErrValidation)
	}

	s.begin(domain.OpUpdate)
	updated, err := s.repo.UpdateShippingOrder(ctx, orderID, domain.ShippingOrder{
		OrderID:       orderID,
		OrderNumber:   req.OrderNumber,
		ClientID:      req.ClientID,
		VesselID:      req.VesselID,
		DestinationID: req.DestinationID,
		CurrencyID:    req.CurrencyID,
		Quantity:      req.Quantity,
		FreightAmount: req.FreightAmount,
		Status:        req.Status,
		ShipDate:      req.ShipDate,
	})
	s.finish(domain.OpUpdate, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to update shipping order", slog.String("order_id", orderID))
		return nil, err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

func (s *shippingOrderService) DeleteShippingOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order id is required", apperrors.ErrValidation)
	}

	s.begin(domain.OpDelete)
	err := s.repo.DeleteShippingOrder(ctx, orderID)
	s.finish(domain.OpDelete, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete shipping order", slog.String("order_id", orderID))
		return err
	}

	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.OrderID != orderID {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	if s.count > 0 {
		s.count--
	}
	s.mu.Unlock()

	return nil
}

// BulkDeleteShippingOrders deletes the selection with all-settled
// semantics.
func (s *shippingOrderService) BulkDeleteShippingOrders(ctx context.Context, ids []string) (domain.BulkBatch, error) {
	batch, err := bulk.Run(ctx, ids, identity, func(ctx context.Context, id string) error {
		return s.DeleteShippingOrder(ctx, id)
	}, bulk.Continue)
	if err != nil {
		return batch, err
	}

	s.LogInfo(ctx, "Bulk shipping-order delete finished",
		slog.Int("succeeded", batch.SuccessCount),
		slog.Int("failed", batch.FailureCount),
	)
	return batch, nil
}
