package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest accepts either an explicit end time or a duration in
// hours; when both are present the duration wins.
type CreateBookingRequest struct {
	ItemID        uuid.UUID  `json:"item_id" binding:"required"`
	StartTime     time.Time  `json:"start_time" binding:"required"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
}
