package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	AddressText  string    `json:"address_text,omitempty"`
	RatingAvg    float64   `json:"rating_avg"`
	TotalRatings int       `json:"total_ratings"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ItemView struct {
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

type ItemListItem struct {
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

type QuoteView struct {
	ItemID             uuid.UUID `json:"item_id"`
	DurationHours      float64   `json:"duration_hours"`
	HourlyTotal        float64   `json:"hourly_total"`
	DailyTotal         *float64  `json:"daily_total,omitempty"`
	RentalFee          float64   `json:"rental_fee"`
	DepositHold        float64   `json:"deposit_hold"`
	TotalAuthorization float64   `json:"total_authorization"`
	DailyRateApplied   bool      `json:"daily_rate_applied"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	BookingCode   string    `json:"booking_code"`
	ItemID        uuid.UUID `json:"item_id"`
	ItemTitle     string    `json:"item_title"`
	RenterID      uuid.UUID `json:"renter_id"`
	RenterName    string    `json:"renter_username"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    float64   `json:"total_price"`
	DepositHold   float64   `json:"deposit_hold"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	BookingCode string    `json:"booking_code"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemTitle   string    `json:"item_title"`
	RenterID    uuid.UUID `json:"renter_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type WalletView struct {
	UserID         uuid.UUID `json:"user_id"`
	Balance        float64   `json:"balance"`
	RewardPoints   int       `json:"reward_points"`
	LifetimeEarned float64   `json:"lifetime_earned"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CategoryView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
