package upstream

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

// ShippingOrderRepository implements the shipping-order port against
// the remote backend.
type ShippingOrderRepository struct {
	client *Client
}

// NewShippingOrderRepository creates a new repository for shipping orders.
func NewShippingOrderRepository(client *Client) repositories.ShippingOrderRepositoryFacade {
	return &ShippingOrderRepository{client: client}
}

type shippingOrderWire struct {
	OrderID       flexID          `json:"order_id"`
	ID            flexID          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	ClientID      flexID          `json:"client_id"`
	Client        flexID          `json:"client"`
	VesselID      flexID          `json:"vessel_id"`
	Vessel        flexID          `json:"vessel"`
	DestinationID flexID          `json:"destination_id"`
	Destination   flexID          `json:"destination"`
	CurrencyID    flexID          `json:"currency_id"`
	Currency      flexID          `json:"currency"`
	Quantity      int64           `json:"quantity"`
	FreightAmount decimal.Decimal `json:"freight_amount"`
	Status        string          `json:"status"`
	ShipDate      string          `json:"ship_date"`
}

func (w shippingOrderWire) toDomain() domain.ShippingOrder {
	return domain.ShippingOrder{
		OrderID:       firstID(w.OrderID, w.ID),
		OrderNumber:   w.OrderNumber,
		ClientID:      firstID(w.ClientID, w.Client),
		VesselID:      firstID(w.VesselID, w.Vessel),
		DestinationID: firstID(w.DestinationID, w.Destination),
		CurrencyID:    firstID(w.CurrencyID, w.Currency),
		Quantity:      w.Quantity,
		FreightAmount: w.FreightAmount,
		Status:        w.Status,
		ShipDate:      parseWireTime(w.ShipDate),
	}
}

type shippingOrderPayload struct {
	OrderNumber   string          `json:"order_number"`
	ClientID      string          `json:"client_id"`
	VesselID      string          `json:"vessel_id"`
	DestinationID string          `json:"destination_id"`
	CurrencyID    string          `json:"currency_id"`
	Quantity      int64           `json:"quantity"`
	FreightAmount decimal.Decimal `json:"freight_amount"`
	Status        string          `json:"status"`
	ShipDate      string          `json:"ship_date"`
}

func toShippingOrderPayload(order domain.ShippingOrder) shippingOrderPayload {
	return shippingOrderPayload{
		OrderNumber:   order.OrderNumber,
		ClientID:      order.ClientID,
		VesselID:      order.VesselID,
		DestinationID: order.DestinationID,
		CurrencyID:    order.CurrencyID,
		Quantity:      order.Quantity,
		FreightAmount: order.FreightAmount,
		Status:        order.Status,
		ShipDate:      formatWireTime(order.ShipDate),
	}
}

func (r *ShippingOrderRepository) ListShippingOrders(ctx context.Context) ([]domain.ShippingOrder, int, error) {
	var body struct {
		OrderList []shippingOrderWire `json:"shipping_order_list"`
		Count     int                 `json:"count"`
	}
	if err := r.client.call(ctx, http.MethodGet, "/shipping-orders", nil, &body); err != nil {
		return nil, 0, err
	}
	orders := make([]domain.ShippingOrder, 0, len(body.OrderList))
	for _, w := range body.OrderList {
		orders = append(orders, w.toDomain())
	}
	return orders, body.Count, nil
}

func (r *ShippingOrderRepository) CreateShippingOrder(ctx context.Context, order domain.ShippingOrder) (*domain.ShippingOrder, error) {
	var created shippingOrderWire
	if err := r.client.call(ctx, http.MethodPost, "/shipping-orders", toShippingOrderPayload(order), &created); err != nil {
		return nil, err
	}
	result := created.toDomain()
	return &result, nil
}

func (r *ShippingOrderRepository) UpdateShippingOrder(ctx context.Context, orderID string, order domain.ShippingOrder) (*domain.ShippingOrder, error) {
	var updated shippingOrderWire
	if err := r.client.call(ctx, http.MethodPut, "/shipping-orders/"+orderID, toShippingOrderPayload(order), &updated); err != nil {
		return nil, err
	}
	result := updated.toDomain()
	return &result, nil
}

func (r *ShippingOrderRepository) DeleteShippingOrder(ctx context.Context, orderID string) error {
	return r.client.call(ctx, http.MethodDelete, "/shipping-orders/"+orderID, nil, nil)
}
