package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ShippingOrder is one denormalized shipping-order record.
type ShippingOrder struct {
	OrderID       string          `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	ClientID      string          `json:"clientId"`      // -> KindCustomer
	VesselID      string          `json:"vesselId"`      // -> KindVessel
	DestinationID string          `json:"destinationId"` // -> KindDestination
	CurrencyID    string          `json:"currencyId"`    // -> KindCurrency
	Quantity      int64           `json:"quantity"`
	FreightAmount decimal.Decimal `json:"freightAmount"`
	Status        string          `json:"status"`
	ShipDate      time.Time       `json:"shipDate"`
}

func (o ShippingOrder) Field(name string) (string, bool) {
	switch name {
	case "order_id":
		return o.OrderID, true
	case "order_number":
		return o.OrderNumber, true
	case "client_id":
		return o.ClientID, true
	case "vessel_id":
		return o.VesselID, true
	case "destination_id":
		return o.DestinationID, true
	case "currency_id":
		return o.CurrencyID, true
	case "quantity":
		return strconv.FormatInt(o.Quantity, 10), true
	case "freight_amount":
		return o.FreightAmount.String(), true
	case "status":
		return o.Status, true
	case "ship_date":
		return o.ShipDate.Format(time.RFC3339), true
	}
	return "", false
}

func (o ShippingOrder) Ref(name string) (EntityKind, string, bool) {
	switch name {
	case "client_id":
		return KindCustomer, o.ClientID, true
	case "vessel_id":
		return KindVessel, o.VesselID, true
	case "destination_id":
		return KindDestination, o.DestinationID, true
	case "currency_id":
		return KindCurrency, o.CurrencyID, true
	}
	return "", "", false
}
