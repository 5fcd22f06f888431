package upstream

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

// VesselRepository implements the fleet-registry port.
type VesselRepository struct {
	client *Client
}

func NewVesselRepository(client *Client) repositories.VesselRepositoryFacade {
	return &VesselRepository{client: client}
}

type vesselWire struct {
	VesselID  flexID `json:"vessel_id"`
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	IMONumber string `json:"imo_number"`
	Flag      string `json:"flag"`
	CapacityT int64  `json:"capacity_t"`
}

func (w vesselWire) toDomain() domain.Vessel {
	return domain.Vessel{
		VesselID:  firstID(w.VesselID, w.ID),
		Name:      w.Name,
		IMONumber: w.IMONumber,
		Flag:      w.Flag,
		CapacityT: w.CapacityT,
	}
}

func (r *VesselRepository) ListVessels(ctx context.Context) ([]domain.Vessel, int, error) {
	var body struct {
		VesselList []vesselWire `json:"vessel_list"`
		Count      int          `json:"count"`
	}
	if err := r.client.call(ctx, http.MethodGet, "/vessels", nil, &body); err != nil {
		return nil, 0, err
	}
	vessels := make([]domain.Vessel, 0, len(body.VesselList))
	for _, w := range body.VesselList {
		vessels = append(vessels, w.toDomain())
	}
	return vessels, body.Count, nil
}

// RateRepository implements the vendor rate-list port.
type RateRepository struct {
	client *Client
}

func NewRateRepository(client *Client) repositories.RateRepositoryFacade {
	return &RateRepository{client: client}
}

type rateWire struct {
	RateID        flexID          `json:"rate_id"`
	ID            flexID          `json:"id"`
	VendorID      flexID          `json:"vendor_id"`
	Vendor        flexID          `json:"vendor"`
	DestinationID flexID          `json:"destination_id"`
	Destination   flexID          `json:"destination"`
	CurrencyID    flexID          `json:"currency_id"`
	Currency      flexID          `json:"currency"`
	RatePerTon    decimal.Decimal `json:"rate_per_ton"`
	ValidFrom     string          `json:"valid_from"`
	ValidTo       string          `json:"valid_to"`
}

func (w rateWire) toDomain() domain.FreightRate {
	return domain.FreightRate{
		RateID:        firstID(w.RateID, w.ID),
		VendorID:      firstID(w.VendorID, w.Vendor),
		DestinationID: firstID(w.DestinationID, w.Destination),
		CurrencyID:    firstID(w.CurrencyID, w.Currency),
		RatePerTon:    w.RatePerTon,
		ValidFrom:     parseWireTime(w.ValidFrom),
		ValidTo:       parseWireTime(w.ValidTo),
	}
}

func (r *RateRepository) ListRates(ctx context.Context) ([]domain.FreightRate, int, error) {
	var body struct {
		RateList []rateWire `json:"rate_list"`
		Count    int        `json:"count"`
	}
	if err := r.client.call(ctx, http.MethodGet, "/rates", nil, &body); err != nil {
		return nil, 0, err
	}
	rates := make([]domain.FreightRate, 0, len(body.RateList))
	for _, w := range body.RateList {
		rates = append(rates, w.toDomain())
	}
	return rates, body.Count, nil
}

// CustomerRepository implements the customer sub-resource port.
type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) repositories.CustomerRepositoryFacade {
	return &CustomerRepository{client: client}
}

type contactPersonWire struct {
	PersonID    flexID `json:"person_id"`
	ID          flexID `json:"id"`
	CustomerID  flexID `json:"customer_id"`
	Customer    flexID `json:"customer"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
}

func (w contactPersonWire) toDomain() domain.ContactPerson {
	return domain.ContactPerson{
		PersonID:    firstID(w.PersonID, w.ID),
		CustomerID:  firstID(w.CustomerID, w.Customer),
		Name:        w.Name,
		Email:       w.Email,
		Phone:       w.Phone,
		Designation: w.Designation,
	}
}

func (r *CustomerRepository) CreateContactPerson(ctx context.Context, customerID string, person domain.ContactPerson) (*domain.ContactPerson, error) {
	payload := struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Designation string `json:"designation"`
	}{
		Name:        person.Name,
		Email:       person.Email,
		Phone:       person.Phone,
		Designation: person.Designation,
	}
	var created contactPersonWire
	if err := r.client.call(ctx, http.MethodPost, "/customers/"+customerID+"/contacts", payload, &created); err != nil {
		return nil, err
	}
	result := created.toDomain()
	if result.CustomerID == "" {
		result.CustomerID = customerID
	}
	return &result, nil
}
