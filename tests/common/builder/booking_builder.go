//go:build unit || e2e

package builder

import (
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	Code        string
	ItemID      uuid.UUID
	RenterID    uuid.UUID
	OwnerID     uuid.UUID
	Start       time.Time
	End         time.Time
	TotalPrice  float64
	DepositHold float64
	Status      booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:          uuid.New(),
		Code:        "7KQ2RD",
		ItemID:      uuid.New(),
		RenterID:    uuid.New(),
		OwnerID:     uuid.New(),
		Start:       start,
		End:         start.Add(10 * time.Hour),
		TotalPrice:  8.33,
		DepositHold: 50.00,
		Status:      booking.StatusPending,
	}
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	now := time.Now()
	return booking.ReconstructBooking(
		b.ID, b.Code, b.ItemID, b.RenterID, b.OwnerID,
		booking.ReconstructRentalWindow(b.Start, b.End),
		b.TotalPrice, b.DepositHold, b.Status,
		now, now,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:            b.ID,
		BookingCode:   b.Code,
		ItemID:        b.ItemID,
		ItemTitle:     "Cordless Drill",
		RenterID:      b.RenterID,
		RenterName:    "testrenter",
		OwnerID:       b.OwnerID,
		OwnerUsername: "testowner",
		StartTime:     b.Start,
		EndTime:       b.End,
		TotalPrice:    b.TotalPrice,
		DepositHold:   b.DepositHold,
		Status:        b.Status.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithRenter(id uuid.UUID) *BookingBuilder {
	b.RenterID = id
	return b
}

func (b *BookingBuilder) WithOwner(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}
