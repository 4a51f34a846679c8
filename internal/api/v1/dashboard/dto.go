package dashboard

import (
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/listing"
	"github.com/Danielrod221/agriwater-live-app/internal/telemetry"
)

type ProfileResponse struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone,omitempty"`
	WaterDistrict      string  `json:"water_district,omitempty"`
	AnnualAllocationAF float64 `json:"annual_allocation_af"`
}

type ReservoirResponse struct {
	Station string `json:"station"`
	Date    string `json:"date"`
	ValueAF int64  `json:"value_af"`
}

type DashboardResponse struct {
	Profile             ProfileResponse           `json:"profile"`
	MyListings          []listing.ListingResponse `json:"my_listings"`
	CurrentBalanceAF    float64                   `json:"current_balance_af"`
	StripeAccountActive bool                      `json:"stripe_account_active"`
	// Reservoir is nil when telemetry has no recent valid reading.
	Reservoir *ReservoirResponse `json:"reservoir,omitempty"`
}

func toReservoirResponse(station string, reading *telemetry.Reading) *ReservoirResponse {
	if reading == nil {
		return nil
	}
	return &ReservoirResponse{Station: station, Date: reading.Date, ValueAF: reading.ValueAF}
}
