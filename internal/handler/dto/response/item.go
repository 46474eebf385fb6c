package response

import (
	"time"

	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PricePerHour  float64   `json:"price_per_hour"`
	PricePerDay   *float64  `json:"price_per_day,omitempty"`
	Deposit       *float64  `json:"deposit,omitempty"`
	AddressText   string    `json:"address_text"`
	Lat           *float64  `json:"lat,omitempty"`
	Lng           *float64  `json:"lng,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ItemListResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	PricePerHour  float64   `json:"price_per_hour"`
	PricePerDay   *float64  `json:"price_per_day,omitempty"`
	AddressText   string    `json:"address_text"`
	Lat           *float64  `json:"lat,omitempty"`
	Lng           *float64  `json:"lng,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuoteResponse struct {
	ItemID             uuid.UUID `json:"item_id"`
	DurationHours      float64   `json:"duration_hours"`
	HourlyTotal        float64   `json:"hourly_total"`
	DailyTotal         *float64  `json:"daily_total,omitempty"`
	RentalFee          float64   `json:"rental_fee"`
	DepositHold        float64   `json:"deposit_hold"`
	TotalAuthorization float64   `json:"total_authorization"`
	DailyRateApplied   bool      `json:"daily_rate_applied"`
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromItemListItems(views []*queries.ItemListItem) []*ItemListResponse {
	resp := make([]*ItemListResponse, len(views))
	for i, view := range views {
		var r ItemListResponse
		_ = copier.Copy(&r, view)
		resp[i] = &r
	}
	return resp
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCategoryViews(views []queries.CategoryView) []CategoryResponse {
	resp := make([]CategoryResponse, len(views))
	for i, view := range views {
		resp[i] = CategoryResponse{Value: view.Value, Label: view.Label}
	}
	return resp
}
