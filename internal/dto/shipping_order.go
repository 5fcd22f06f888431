package dto

import (
	"time"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShippingOrderRequest defines the data needed to create an order.
type CreateShippingOrderRequest struct {
	OrderNumber   string          `json:"orderNumber" binding:"required"`
	ClientID      string          `json:"clientId" binding:"required"`
	VesselID      string          `json:"vesselId"`
	DestinationID string          `json:"destinationId" binding:"required"`
	CurrencyID    string          `json:"currencyId"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	FreightAmount decimal.Decimal `json:"freightAmount"`
	Status        string          `json:"status"`
	ShipDate      time.Time       `json:"shipDate"`
}

// UpdateShippingOrderRequest replaces the identified order wholesale.
type UpdateShippingOrderRequest struct {
	OrderNumber   string          `json:"orderNumber" binding:"required"`
	ClientID      string          `json:"clientId" binding:"required"`
	VesselID      string          `json:"vesselId"`
	DestinationID string          `json:"destinationId" binding:"required"`
	CurrencyID    string          `json:"currencyId"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	FreightAmount decimal.Decimal `json:"freightAmount"`
	Status        string          `json:"status"`
	ShipDate      time.Time       `json:"shipDate"`
}

// BulkDeleteOrdersRequest deletes a selection of shipping orders.
type BulkDeleteOrdersRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// ShippingOrderResponse is one order row with resolved display names.
type ShippingOrderResponse struct {
	OrderID         string          `json:"orderId"`
	OrderNumber     string          `json:"orderNumber"`
	ClientID        string          `json:"clientId"`
	ClientName      string          `json:"clientName"`
	VesselID        string          `json:"vesselId"`
	VesselName      string          `json:"vesselName"`
	DestinationID   string          `json:"destinationId"`
	DestinationName string          `json:"destinationName"`
	CurrencyID      string          `json:"currencyId"`
	CurrencyName    string          `json:"currencyName"`
	Quantity        int64           `json:"quantity"`
	FreightAmount   decimal.Decimal `json:"freightAmount"`
	Status          string          `json:"status"`
	ShipDate        time.Time       `json:"shipDate"`
}

// ListShippingOrdersResponse is the list view plus the backend count.
type ListShippingOrdersResponse struct {
	Orders []ShippingOrderResponse `json:"orders"`
	Count  int                     `json:"count"`
}

// ToShippingOrderResponse converts a domain.ShippingOrder to its DTO.
func ToShippingOrderResponse(order *domain.ShippingOrder, names NameReader) ShippingOrderResponse {
	return ShippingOrderResponse{
		OrderID:         order.OrderID,
		OrderNumber:     order.OrderNumber,
		ClientID:        order.ClientID,
		ClientName:      names(domain.KindCustomer, order.ClientID),
		VesselID:        order.VesselID,
		VesselName:      names(domain.KindVessel, order.VesselID),
		DestinationID:   order.DestinationID,
		DestinationName: names(domain.KindDestination, order.DestinationID),
		CurrencyID:      order.CurrencyID,
		CurrencyName:    names(domain.KindCurrency, order.CurrencyID),
		Quantity:        order.Quantity,
		FreightAmount:   order.FreightAmount,
		Status:          order.Status,
		ShipDate:        order.ShipDate,
	}
}

// ToListShippingOrdersResponse converts a filtered view into the list DTO.
func ToListShippingOrdersResponse(orders []domain.ShippingOrder, count int, names NameReader) ListShippingOrdersResponse {
	res := ListShippingOrdersResponse{
		Orders: make([]ShippingOrderResponse, len(orders)),
		Count:  count,
	}
	for i := range orders {
		res.Orders[i] = ToShippingOrderResponse(&orders[i], names)
	}
	return res
}
