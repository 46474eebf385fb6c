package request

import "time"

type CreateItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category" binding:"required"`
	PricePerHour float64  `json:"price_per_hour" binding:"required"`
	PricePerDay  *float64 `json:"price_per_day,omitempty"`
	Deposit      *float64 `json:"deposit,omitempty"`
	AddressText  string   `json:"address_text,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	PhotoURL     string   `json:"photo_url,omitempty"`
}

type UpdateItemRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	PricePerDay  *float64 `json:"price_per_day,omitempty"`
	Deposit      *float64 `json:"deposit,omitempty"`
	AddressText  *string  `json:"address_text,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	PhotoURL     *string  `json:"photo_url,omitempty"`
	IsAvailable  *bool    `json:"is_available,omitempty"`
}

type SearchItemsQuery struct {
	Lat      float64  `form:"lat" binding:"required"`
	Lng      float64  `form:"lng" binding:"required"`
	RadiusKm float64  `form:"radius_km"`
	Category *string  `form:"category"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
}

// QuoteQuery prices a window without creating anything. Both bounds are
// optional so the storefront can poll while the renter is still picking
// dates.
type QuoteQuery struct {
	Start time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}
