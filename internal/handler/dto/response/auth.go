package response

import (
	"time"

	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	AddressText  string    `json:"address_text,omitempty"`
	RatingAvg    float64   `json:"rating_avg"`
	TotalRatings int       `json:"total_ratings"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user,omitempty"`
}

type WalletResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Balance        float64   `json:"balance"`
	RewardPoints   int       `json:"reward_points"`
	LifetimeEarned float64   `json:"lifetime_earned"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromWalletView(view *queries.WalletView) *WalletResponse {
	var resp WalletResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
