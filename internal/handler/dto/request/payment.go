package request

import "github.com/google/uuid"

type AuthorizePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}
