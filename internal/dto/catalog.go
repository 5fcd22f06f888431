package dto

import (
	"time"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VesselResponse is one vessel row of the fleet view.
type VesselResponse struct {
	VesselID  string `json:"vesselId"`
	Name      string `json:"name"`
	IMONumber string `json:"imoNumber"`
	Flag      string `json:"flag"`
	CapacityT int64  `json:"capacityT"`
}

// ListVesselsResponse is the fleet list plus the backend count.
type ListVesselsResponse struct {
	Vessels []VesselResponse `json:"vessels"`
	Count   int              `json:"count"`
}

// ToListVesselsResponse converts vessels into the list DTO.
func ToListVesselsResponse(vessels []domain.Vessel, count int) ListVesselsResponse {
	res := ListVesselsResponse{
		Vessels: make([]VesselResponse, len(vessels)),
		Count:   count,
	}
	for i, v := range vessels {
		res.Vessels[i] = VesselResponse{
			VesselID:  v.VesselID,
			Name:      v.Name,
			IMONumber: v.IMONumber,
			Flag:      v.Flag,
			CapacityT: v.CapacityT,
		}
	}
	return res
}

// FreightRateResponse is one rate-list row with resolved display names.
type FreightRateResponse struct {
	RateID          string          `json:"rateId"`
	VendorID        string          `json:"vendorId"`
	VendorName      string          `json:"vendorName"`
	DestinationID   string          `json:"destinationId"`
	DestinationName string          `json:"destinationName"`
	CurrencyID      string          `json:"currencyId"`
	CurrencyName    string          `json:"currencyName"`
	RatePerTon      decimal.Decimal `json:"ratePerTon"`
	ValidFrom       time.Time       `json:"validFrom"`
	ValidTo         time.Time       `json:"validTo"`
}

// ListFreightRatesResponse is the rate list plus the backend count.
type ListFreightRatesResponse struct {
	Rates []FreightRateResponse `json:"rates"`
	Count int                   `json:"count"`
}

// ToListFreightRatesResponse converts rates into the list DTO.
func ToListFreightRatesResponse(rates []domain.FreightRate, count int, names NameReader) ListFreightRatesResponse {
	res := ListFreightRatesResponse{
		Rates: make([]FreightRateResponse, len(rates)),
		Count: count,
	}
	for i, r := range rates {
		res.Rates[i] = FreightRateResponse{
			RateID:          r.RateID,
			VendorID:        r.VendorID,
			VendorName:      names(domain.KindVendor, r.VendorID),
			DestinationID:   r.DestinationID,
			DestinationName: names(domain.KindDestination, r.DestinationID),
			CurrencyID:      r.CurrencyID,
			CurrencyName:    names(domain.KindCurrency, r.CurrencyID),
			RatePerTon:      r.RatePerTon,
			ValidFrom:       r.ValidFrom,
			ValidTo:         r.ValidTo,
		}
	}
	return res
}
