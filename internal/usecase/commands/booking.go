package commands

import (
	"context"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/domain/item"
	"rentradar/internal/infra"
	"rentradar/internal/infra/db"
	"rentradar/internal/pkg/bookingcode"
	"rentradar/internal/pkg/clock"
	"rentradar/internal/pkg/config"
	"rentradar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrBookingConflict = errs.New("item is already booked for that period")
	ErrBookingNotFound = errs.New("booking not found")
	// ErrStaleBooking means the booking changed state between the legality
	// check and the write. The client should reload and retry.
	ErrStaleBooking = errs.New("booking was modified concurrently")
)

// Code collisions are rare (36^6 keyspace) but the unique index makes them
// loud, so creation retries a few times before giving up.
const maxCodeAttempts = 3

type CreateBookingInput struct {
	ItemID        uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	DurationHours *float64
}

type BookingCommands interface {
	Create(ctx context.Context, renterID uuid.UUID, in CreateBookingInput) (uuid.UUID, error)
	Accept(ctx context.Context, actorID, bookingID uuid.UUID) error
	Reject(ctx context.Context, actorID, bookingID uuid.UUID) error
	Complete(ctx context.Context, actorID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	pool       *pgxpool.Pool
	items      ItemRepository
	bookings   BookingRepository
	wallets    WalletRepository
	calculator *booking.QuoteCalculator
	clk        clock.Clock
	policy     config.PolicyConfig
}

func NewBookingCommands(
	pool *pgxpool.Pool,
	items ItemRepository,
	bookings BookingRepository,
	wallets WalletRepository,
	calculator *booking.QuoteCalculator,
	clk clock.Clock,
	policy config.PolicyConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		pool:       pool,
		items:      items,
		bookings:   bookings,
		wallets:    wallets,
		calculator: calculator,
		clk:        clk,
		policy:     policy,
	}
}

// Create validates the request against the item and the calendar, prices
// the window, and persists a pending booking under a fresh booking code.
func (c *bookingCommandsImpl) Create(ctx context.Context, renterID uuid.UUID, in CreateBookingInput) (uuid.UUID, error) {
	snap, err := c.items.FindBookingSnapshot(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrItemNotFound)
		}
		return uuid.Nil, err
	}
	if !snap.IsAvailable {
		return uuid.Nil, ErrItemUnavailable
	}
	if renterID == snap.OwnerID {
		return uuid.Nil, booking.ErrOwnItem
	}

	window, err := c.buildWindow(in)
	if err != nil {
		return uuid.Nil, err
	}

	overlaps, err := c.bookings.ExistsOverlapping(ctx, snap.ID, window)
	if err != nil {
		return uuid.Nil, err
	}
	if overlaps {
		return uuid.Nil, ErrBookingConflict
	}

	rates, err := item.NewRateCard(snap.PricePerHour, snap.PricePerDay, snap.Deposit)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "stored item has an invalid rate card")
	}
	quote := c.calculator.QuoteWindow(rates, window)

	var lastErr error
	for range maxCodeAttempts {
		code, err := bookingcode.New()
		if err != nil {
			return uuid.Nil, err
		}

		b, err := booking.NewBooking(code, snap.ID, renterID, snap.OwnerID, window, quote)
		if err != nil {
			return uuid.Nil, err
		}

		if err := c.bookings.Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				lastErr = err
				continue
			}
			return uuid.Nil, err
		}
		return b.ID(), nil
	}
	return uuid.Nil, errs.Wrap(lastErr, "exhausted booking code attempts")
}

func (c *bookingCommandsImpl) Accept(ctx context.Context, actorID, bookingID uuid.UUID) error {
	return c.transition(ctx, actorID, bookingID,
		func(b *booking.Booking, actor uuid.UUID) error { return b.Accept(actor) },
		booking.StatusPending, booking.StatusAccepted, nil)
}

func (c *bookingCommandsImpl) Reject(ctx context.Context, actorID, bookingID uuid.UUID) error {
	return c.transition(ctx, actorID, bookingID,
		func(b *booking.Booking, actor uuid.UUID) error { return b.Reject(actor) },
		booking.StatusPending, booking.StatusRejected, nil)
}

// Complete flips the booking to completed and settles the wallets in the
// same transaction: the owner earns the rental fee plus reward points, the
// renter earns points for spending.
func (c *bookingCommandsImpl) Complete(ctx context.Context, actorID, bookingID uuid.UUID) error {
	return c.transition(ctx, actorID, bookingID,
		func(b *booking.Booking, actor uuid.UUID) error { return b.Complete(actor) },
		booking.StatusAccepted, booking.StatusCompleted,
		func(tx pgx.Tx, b *booking.Booking) error {
			amount := booking.RoundCents(b.TotalPrice())
			ownerPts := int(amount) * c.policy.OwnerPointsPerDollar
			renterPts := int(amount) * c.policy.RenterPointsPerDollar

			if err := c.wallets.CreditEarnings(ctx, tx, b.OwnerID(), amount, ownerPts); err != nil {
				return err
			}
			return c.wallets.AwardPoints(ctx, tx, b.RenterID(), renterPts)
		})
}

func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	actorID, bookingID uuid.UUID,
	apply func(*booking.Booking, uuid.UUID) error,
	from, to booking.Status,
	settle func(pgx.Tx, *booking.Booking) error,
) error {
	b, err := c.bookings.FindDomainByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return err
	}

	if err := apply(b, actorID); err != nil {
		return err
	}

	return db.WithinTx(ctx, c.pool, func(tx pgx.Tx) error {
		changed, err := c.bookings.UpdateStatus(ctx, tx, bookingID, from, to)
		if err != nil {
			return err
		}
		if !changed {
			return ErrStaleBooking
		}
		if settle != nil {
			return settle(tx, b)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) buildWindow(in CreateBookingInput) (booking.RentalWindow, error) {
	now := c.clk.Now()
	if in.DurationHours != nil {
		return booking.NewRentalWindowFromDuration(in.StartTime, *in.DurationHours, now)
	}
	return booking.NewRentalWindow(in.StartTime, in.EndTime, now)
}
