package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one denormalized stock record as supplied by the backend.
// Foreign keys hold raw ids; display names live in the reference cache.
// Records are immutable snapshots: edits produce a new StockItem, the
// collection is replaced wholesale on refetch.
type StockItem struct {
	StockID     string          `json:"stockId"`
	ItemName    string          `json:"itemName"`
	ClientID    string          `json:"clientId"`    // -> KindCustomer
	VesselID    string          `json:"vesselId"`    // -> KindVessel
	WarehouseID string          `json:"warehouseId"` // -> KindLocation
	CurrencyID  string          `json:"currencyId"`  // -> KindCurrency
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Status      string          `json:"status"`
	ReceivedAt  time.Time       `json:"receivedAt"`
}

// Field returns the scalar string form of a named field for filtering
// and sorting. Foreign-key fields return the raw id here; resolved-name
// comparisons go through Ref and the cache snapshot.
func (s StockItem) Field(name string) (string, bool) {
	switch name {
	case "stock_id":
		return s.StockID, true
	case "item_name":
		return s.ItemName, true
	case "client_id":
		return s.ClientID, true
	case "vessel_id":
		return s.VesselID, true
	case "warehouse_id":
		return s.WarehouseID, true
	case "currency_id":
		return s.CurrencyID, true
	case "quantity":
		return strconv.FormatInt(s.Quantity, 10), true
	case "unit_price":
		return s.UnitPrice.String(), true
	case "status":
		return s.Status, true
	case "received_at":
		return s.ReceivedAt.Format(time.RFC3339), true
	}
	return "", false
}

// Ref maps a foreign-key field to the entity kind and id it references.
func (s StockItem) Ref(name string) (EntityKind, string, bool) {
	switch name {
	case "client_id":
		return KindCustomer, s.ClientID, true
	case "vessel_id":
		return KindVessel, s.VesselID, true
	case "warehouse_id":
		return KindLocation, s.WarehouseID, true
	case "currency_id":
		return KindCurrency, s.CurrencyID, true
	}
	return "", "", false
}
