package upstream

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

// StockRepository implements the stock port against the remote backend.
type StockRepository struct {
	client *Client
}

// NewStockRepository creates a new repository for stock records.
func NewStockRepository(client *Client) repositories.StockRepositoryFacade {
	return &StockRepository{client: client}
}

// stockWire is the backend's stock record shape. Foreign keys carry a
// drifted alias per field (client_id on newer records, client on older
// ones); normalization to the canonical name happens here and nowhere
// else.
type stockWire struct {
	StockID     flexID          `json:"stock_id"`
	ID          flexID          `json:"id"`
	ItemName    string          `json:"item_name"`
	ClientID    flexID          `json:"client_id"`
	Client      flexID          `json:"client"`
	VesselID    flexID          `json:"vessel_id"`
	Vessel      flexID          `json:"vessel"`
	WarehouseID flexID          `json:"warehouse_id"`
	Warehouse   flexID          `json:"warehouse"`
	CurrencyID  flexID          `json:"currency_id"`
	Currency    flexID          `json:"currency"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Status      string          `json:"status"`
	ReceivedAt  string          `json:"received_at"`
}

func (w stockWire) toDomain() domain.StockItem {
	return domain.StockItem{
		StockID:     firstID(w.StockID, w.ID),
		ItemName:    w.ItemName,
		ClientID:    firstID(w.ClientID, w.Client),
		VesselID:    firstID(w.VesselID, w.Vessel),
		WarehouseID: firstID(w.WarehouseID, w.Warehouse),
		CurrencyID:  firstID(w.CurrencyID, w.Currency),
		Quantity:    w.Quantity,
		UnitPrice:   w.UnitPrice,
		Status:      w.Status,
		ReceivedAt:  parseWireTime(w.ReceivedAt),
	}
}

// stockPayload is the flat mutation body. Only canonical field names go
// out; the drift is read-side only.
type stockPayload struct {
	ItemName    string          `json:"item_name"`
	ClientID    string          `json:"client_id"`
	VesselID    string          `json:"vessel_id"`
	WarehouseID string          `json:"warehouse_id"`
	CurrencyID  string          `json:"currency_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Status      string          `json:"status"`
	ReceivedAt  string          `json:"received_at"`
}

func toStockPayload(item domain.StockItem) stockPayload {
	return stockPayload{
		ItemName:    item.ItemName,
		ClientID:    item.ClientID,
		VesselID:    item.VesselID,
		WarehouseID: item.WarehouseID,
		CurrencyID:  item.CurrencyID,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Status:      item.Status,
		ReceivedAt:  formatWireTime(item.ReceivedAt),
	}
}

// ListStockItems fetches the full stock collection and the
// backend-reported total count.
func (r *StockRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, int, error) {
	var body struct {
		StockList []stockWire `json:"stock_list"`
		Count     int         `json:"count"`
	}
	if err := r.client.call(ctx, http.MethodGet, "/stock", nil, &body); err != nil {
		return nil, 0, err
	}
	items := make([]domain.StockItem, 0, len(body.StockList))
	for _, w := range body.StockList {
		items = append(items, w.toDomain())
	}
	return items, body.Count, nil
}

func (r *StockRepository) CreateStockItem(ctx context.Context, item domain.StockItem) (*domain.StockItem, error) {
	var created stockWire
	if err := r.client.call(ctx, http.MethodPost, "/stock", toStockPayload(item), &created); err != nil {
		return nil, err
	}
	result := created.toDomain()
	return &result, nil
}

func (r *StockRepository) UpdateStockItem(ctx context.Context, stockID string, item domain.StockItem) (*domain.StockItem, error) {
	var updated stockWire
	if err := r.client.call(ctx, http.MethodPut, "/stock/"+stockID, toStockPayload(item), &updated); err != nil {
		return nil, err
	}
	result := updated.toDomain()
	return &result, nil
}

func (r *StockRepository) DeleteStockItem(ctx context.Context, stockID string) error {
	return r.client.call(ctx, http.MethodDelete, "/stock/"+stockID, nil, nil)
}
