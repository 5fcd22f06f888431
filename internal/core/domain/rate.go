package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightRate is one row of a vendor's rate list.
type FreightRate struct {
	RateID        string          `json:"rateId"`
	VendorID      string          `json:"vendorId"`      // -> KindVendor
	DestinationID string          `json:"destinationId"` // -> KindDestination
	CurrencyID    string          `json:"currencyId"`    // -> KindCurrency
	RatePerTon    decimal.Decimal `json:"ratePerTon"`
	ValidFrom     time.Time       `json:"validFrom"`
	ValidTo       time.Time       `json:"validTo"`
}

func (r FreightRate) Field(name string) (string, bool) {
	switch name {
	case "rate_id":
		return r.RateID, true
	case "vendor_id":
		return r.VendorID, true
	case "destination_id":
		return r.DestinationID, true
	case "currency_id":
		return r.CurrencyID, true
	case "rate_per_ton":
		return r.RatePerTon.String(), true
	case "valid_from":
		return r.ValidFrom.Format(time.RFC3339), true
	case "valid_to":
		return r.ValidTo.Format(time.RFC3339), true
	}
	return "", false
}

func (r FreightRate) Ref(name string) (EntityKind, string, bool) {
	switch name {
	case "vendor_id":
		return KindVendor, r.VendorID, true
	case "destination_id":
		return KindDestination, r.DestinationID, true
	case "currency_id":
		return KindCurrency, r.CurrencyID, true
	}
	return "", "", false
}
