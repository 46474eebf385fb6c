package commands

import (
	"context"

	"rentradar/internal/domain/booking"
	"rentradar/internal/infra"
	"rentradar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotRenter         = errs.New("only the renter can authorize payment")
	ErrBookingNotPayable = errs.New("booking is not awaiting payment")
	ErrAuthorizationFail = errs.New("payment authorization failed")
)

const paymentCurrency = "USD"

type PaymentCommands interface {
	// Authorize places a hold for the booking's total (rental fee plus
	// deposit). The renter runs this while the booking is still open.
	Authorize(ctx context.Context, actorID, bookingID uuid.UUID) (*PaymentAuthorization, error)
}

type paymentCommandsImpl struct {
	bookings BookingRepository
	gateway  PaymentGateway
}

func NewPaymentCommands(bookings BookingRepository, gateway PaymentGateway) PaymentCommands {
	return &paymentCommandsImpl{bookings: bookings, gateway: gateway}
}

func (c *paymentCommandsImpl) Authorize(ctx context.Context, actorID, bookingID uuid.UUID) (*PaymentAuthorization, error) {
	b, err := c.bookings.FindDomainByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	if b.RenterID() != actorID {
		return nil, ErrNotRenter
	}
	if b.Status().IsTerminal() {
		return nil, ErrBookingNotPayable
	}

	amount := booking.RoundCents(b.TotalPrice() + b.DepositHold())
	auth, err := c.gateway.Authorize(ctx, amount, paymentCurrency)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthorizationFail)
	}
	return auth, nil
}
