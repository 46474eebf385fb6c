//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuote() booking.Quote {
	return booking.Quote{
		DurationHours:      10,
		RentalFee:          8.33,
		DepositHold:        50,
		TotalAuthorization: 58.33,
	}
}

func TestNewBooking(t *testing.T) {
	itemID := uuid.New()
	renterID := uuid.New()
	ownerID := uuid.New()
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	window := booking.ReconstructRentalWindow(start, start.Add(10*time.Hour))

	t.Run("new booking starts pending", func(t *testing.T) {
		b, err := booking.NewBooking("7KQ2RD", itemID, renterID, ownerID, window, newQuote())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, 8.33, b.TotalPrice())
		assert.Equal(t, 50.0, b.DepositHold())
	})

	t.Run("code is required", func(t *testing.T) {
		_, err := booking.NewBooking("", itemID, renterID, ownerID, window, newQuote())
		require.ErrorIs(t, err, booking.ErrMissingCode)
	})

	t.Run("renter cannot be the owner", func(t *testing.T) {
		_, err := booking.NewBooking("7KQ2RD", itemID, ownerID, ownerID, window, newQuote())
		require.ErrorIs(t, err, booking.ErrOwnItem)
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		quote := newQuote()
		quote.RentalFee = -1
		_, err := booking.NewBooking("7KQ2RD", itemID, renterID, ownerID, window, quote)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("owner accepts a pending booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		require.NoError(t, b.Accept(bb.OwnerID))
		assert.Equal(t, booking.StatusAccepted, b.Status())
	})

	t.Run("renter cannot accept", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Accept(bb.RenterID), booking.ErrNotOwner)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("accept is pending only", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted)
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Accept(bb.OwnerID), booking.ErrNotPending)
		assert.Equal(t, booking.StatusAccepted, b.Status())
	})

	t.Run("owner rejects a pending booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		require.NoError(t, b.Reject(bb.OwnerID))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("reject after accept is refused", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted)
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Reject(bb.OwnerID), booking.ErrNotPending)
		assert.Equal(t, booking.StatusAccepted, b.Status())
	})

	t.Run("either party completes an accepted booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted)

		byRenter := bb.BuildDomain()
		require.NoError(t, byRenter.Complete(bb.RenterID))
		assert.Equal(t, booking.StatusCompleted, byRenter.Status())

		byOwner := bb.BuildDomain()
		require.NoError(t, byOwner.Complete(bb.OwnerID))
		assert.Equal(t, booking.StatusCompleted, byOwner.Status())
	})

	t.Run("stranger cannot complete", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted)
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Complete(uuid.New()), booking.ErrNotParticipant)
		assert.Equal(t, booking.StatusAccepted, b.Status())
	})

	t.Run("complete requires acceptance first", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		require.ErrorIs(t, b.Complete(bb.RenterID), booking.ErrNotAccepted)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		b := bb.BuildDomain()

		assert.ErrorIs(t, b.Accept(bb.OwnerID), booking.ErrNotPending)
		assert.ErrorIs(t, b.Reject(bb.OwnerID), booking.ErrNotPending)
		assert.ErrorIs(t, b.Complete(bb.RenterID), booking.ErrNotAccepted)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})
}

func TestTransitionPredicates(t *testing.T) {
	stranger := uuid.New()

	t.Run("pending booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		assert.True(t, b.CanAccept(bb.OwnerID))
		assert.True(t, b.CanReject(bb.OwnerID))
		assert.False(t, b.CanAccept(bb.RenterID))
		assert.False(t, b.CanComplete(bb.RenterID))
	})

	t.Run("accepted booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted)
		b := bb.BuildDomain()

		assert.False(t, b.CanAccept(bb.OwnerID))
		assert.True(t, b.CanComplete(bb.RenterID))
		assert.True(t, b.CanComplete(bb.OwnerID))
		assert.False(t, b.CanComplete(stranger))
	})
}
