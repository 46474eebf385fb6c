package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid booking status")
	ErrNotOwner       = errors.New("only the item owner may perform this transition")
	ErrNotParticipant = errors.New("only the renter or the item owner may perform this transition")
	ErrNotPending     = errors.New("booking is no longer pending")
	ErrNotAccepted    = errors.New("booking has not been accepted")
	ErrOwnItem        = errors.New("cannot book your own item")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrMissingCode    = errors.New("booking code is required")
)

// Booking is a rental agreement between a renter and an item owner.
// Transition methods enforce the lifecycle and the acting party's
// authority; an illegal attempt returns an error and leaves the booking
// unchanged.
type Booking struct {
	id          uuid.UUID
	code        string
	itemID      uuid.UUID
	renterID    uuid.UUID
	ownerID     uuid.UUID
	window      RentalWindow
	totalPrice  float64
	depositHold float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	code string,
	itemID, renterID, ownerID uuid.UUID,
	window RentalWindow,
	quote Quote,
) (*Booking, error) {
	if code == "" {
		return nil, ErrMissingCode
	}
	if renterID == ownerID {
		return nil, ErrOwnItem
	}
	if quote.RentalFee < 0 || quote.DepositHold < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:          uuid.New(),
		code:        code,
		itemID:      itemID,
		renterID:    renterID,
		ownerID:     ownerID,
		window:      window,
		totalPrice:  quote.RentalFee,
		depositHold: quote.DepositHold,
		status:      StatusPending,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	code string,
	itemID, renterID, ownerID uuid.UUID,
	window RentalWindow,
	totalPrice, depositHold float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		code:        code,
		itemID:      itemID,
		renterID:    renterID,
		ownerID:     ownerID,
		window:      window,
		totalPrice:  totalPrice,
		depositHold: depositHold,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Code() string         { return b.code }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) Window() RentalWindow { return b.window }
func (b *Booking) TotalPrice() float64  { return b.totalPrice }
func (b *Booking) DepositHold() float64 { return b.depositHold }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsParticipant(actorID uuid.UUID) bool {
	return actorID == b.renterID || actorID == b.ownerID
}

// Accept moves a pending booking to accepted. Owner only.
func (b *Booking) Accept(actorID uuid.UUID) error {
	if actorID != b.ownerID {
		return ErrNotOwner
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusAccepted
	return nil
}

// Reject moves a pending booking to rejected. Owner only. Terminal.
func (b *Booking) Reject(actorID uuid.UUID) error {
	if actorID != b.ownerID {
		return ErrNotOwner
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusRejected
	return nil
}

// Complete moves an accepted booking to completed. Either party may
// confirm the return.
func (b *Booking) Complete(actorID uuid.UUID) error {
	if !b.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if b.status != StatusAccepted {
		return ErrNotAccepted
	}
	b.status = StatusCompleted
	return nil
}

// CanAccept and friends are the button-visibility predicates: they answer
// whether a transition is legal for the viewer without attempting it.
func (b *Booking) CanAccept(actorID uuid.UUID) bool {
	return actorID == b.ownerID && b.status == StatusPending
}

func (b *Booking) CanReject(actorID uuid.UUID) bool {
	return actorID == b.ownerID && b.status == StatusPending
}

func (b *Booking) CanComplete(actorID uuid.UUID) bool {
	return b.IsParticipant(actorID) && b.status == StatusAccepted
}
