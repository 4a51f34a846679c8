package listing

import (
	"math"
	"time"

	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
)

// ListingInput carries listing terms. Price arrives in integer cents per
// acre-foot so currency never passes through a float; the quantity is a
// decimal acre-foot value converted once to milli-acre-feet at this
// boundary.
type ListingInput struct {
	LeaseDuration   string  `json:"lease_duration" binding:"required"`
	WaterDistrict   string  `json:"water_district" binding:"required"`
	AmountAF        float64 `json:"amount_af" binding:"required,gt=0"`
	PriceCentsPerAF int64   `json:"price_cents_per_af" binding:"required,gt=0"`
	Description     string  `json:"description"`
}

func (in ListingInput) toService() services.ListingInput {
	return services.ListingInput{
		LeaseDuration: in.LeaseDuration,
		WaterDistrict: in.WaterDistrict,
		AmountMilliAF: int64(math.Round(in.AmountAF * 1000)),
		PriceCentsAF:  in.PriceCentsPerAF,
		Description:   in.Description,
	}
}

type ListingResponse struct {
	ID              uint      `json:"id"`
	SellerID        uint      `json:"seller_id"`
	SellerName      string    `json:"seller_name,omitempty"`
	ListingType     string    `json:"listing_type"`
	LeaseDuration   string    `json:"lease_duration"`
	WaterDistrict   string    `json:"water_district"`
	AmountAF        float64   `json:"amount_af"`
	PriceCentsPerAF int64     `json:"price_cents_per_af"`
	TotalCents      int64     `json:"total_cents"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ID:              l.ID,
		SellerID:        l.SellerID,
		SellerName:      l.Seller.Name,
		ListingType:     l.ListingType,
		LeaseDuration:   l.LeaseDuration,
		WaterDistrict:   l.WaterDistrict,
		AmountAF:        utils.MilliAFToAF(l.AmountMilliAF),
		PriceCentsPerAF: l.PriceCentsAF,
		TotalCents:      utils.TotalCents(l.PriceCentsAF, l.AmountMilliAF),
		Description:     l.Description,
		Status:          l.Status,
		CreatedAt:       l.CreatedAt,
	}
}

func ToResponseList(listings []models.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, ToResponse(&listings[i]))
	}
	return out
}
