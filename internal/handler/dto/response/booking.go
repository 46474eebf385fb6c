package response

import (
	"time"

	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(views []*queries.BookingListItem) []*BookingListResponse {
	resp := make([]*BookingListResponse, len(views))
	for i, view := range views {
		var r BookingListResponse
		_ = copier.Copy(&r, view)
		resp[i] = &r
	}
	return resp
}
