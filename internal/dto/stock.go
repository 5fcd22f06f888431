package dto

import (
	"time"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockItemRequest defines the data needed to create a stock item.
// Foreign keys are raw backend ids (snake_case on the wire upstream).
type CreateStockItemRequest struct {
	ItemName    string          `json:"itemName" binding:"required"`
	ClientID    string          `json:"clientId" binding:"required"`
	VesselID    string          `json:"vesselId"`
	WarehouseID string          `json:"warehouseId"`
	CurrencyID  string          `json:"currencyId"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Status      string          `json:"status"`
}

// UpdateStockItemRequest replaces the identified stock item wholesale;
// edits never mutate a previously fetched record in place.
type UpdateStockItemRequest struct {
	ItemName    string          `json:"itemName" binding:"required"`
	ClientID    string          `json:"clientId" binding:"required"`
	VesselID    string          `json:"vesselId"`
	WarehouseID string          `json:"warehouseId"`
	CurrencyID  string          `json:"currencyId"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Status      string          `json:"status"`
}

// StockItemPatch is the shared edit a bulk update applies to every
// selected record. Nil fields stay unchanged.
type StockItemPatch struct {
	Status      *string `json:"status,omitempty"`
	VesselID    *string `json:"vesselId,omitempty"`
	WarehouseID *string `json:"warehouseId,omitempty"`
}

// BulkUpdateStockRequest applies one patch across a selection.
type BulkUpdateStockRequest struct {
	IDs   []string       `json:"ids" binding:"required,min=1"`
	Patch StockItemPatch `json:"patch" binding:"required"`
}

// BulkDeleteStockRequest deletes a selection of stock items.
type BulkDeleteStockRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// StockItemResponse is one stock row with its foreign keys resolved to
// display names for direct rendering.
type StockItemResponse struct {
	StockID       string          `json:"stockId"`
	ItemName      string          `json:"itemName"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	VesselID      string          `json:"vesselId"`
	VesselName    string          `json:"vesselName"`
	WarehouseID   string          `json:"warehouseId"`
	WarehouseName string          `json:"warehouseName"`
	CurrencyID    string          `json:"currencyId"`
	CurrencyName  string          `json:"currencyName"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Status        string          `json:"status"`
	ReceivedAt    time.Time       `json:"receivedAt"`
}

// ListStockItemsResponse is the full list view plus the backend count.
type ListStockItemsResponse struct {
	Items []StockItemResponse `json:"items"`
	Count int                 `json:"count"`
}

// NameReader is a non-triggering read of the reference cache, safe to
// call from response mapping.
type NameReader func(kind domain.EntityKind, id string) string

// ToStockItemResponse converts a domain.StockItem to its response DTO,
// reading display names through the supplied cache reader.
func ToStockItemResponse(item *domain.StockItem, names NameReader) StockItemResponse {
	return StockItemResponse{
		StockID:       item.StockID,
		ItemName:      item.ItemName,
		ClientID:      item.ClientID,
		ClientName:    names(domain.KindCustomer, item.ClientID),
		VesselID:      item.VesselID,
		VesselName:    names(domain.KindVessel, item.VesselID),
		WarehouseID:   item.WarehouseID,
		WarehouseName: names(domain.KindLocation, item.WarehouseID),
		CurrencyID:    item.CurrencyID,
		CurrencyName:  names(domain.KindCurrency, item.CurrencyID),
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		Status:        item.Status,
		ReceivedAt:    item.ReceivedAt,
	}
}

// ToListStockItemsResponse converts a filtered view into the list DTO.
func ToListStockItemsResponse(items []domain.StockItem, count int, names NameReader) ListStockItemsResponse {
	res := ListStockItemsResponse{
		Items: make([]StockItemResponse, len(items)),
		Count: count,
	}
	for i := range items {
		res.Items[i] = ToStockItemResponse(&items[i], names)
	}
	return res
}
