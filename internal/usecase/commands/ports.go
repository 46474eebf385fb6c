package commands

import (
	"context"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/domain/item"
	"rentradar/internal/domain/user"
	"rentradar/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side repository ports. Implementations live in internal/infra.
// Methods that must participate in a surrounding transaction take an
// explicit db.Querier; the rest run on the repository's own pool.

type AuthSnapshot struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	IsActive     bool
}

type ItemBookingSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	PricePerHour float64
	PricePerDay  *float64
	Deposit      *float64
	IsAvailable  bool
}

type UserRepository interface {
	Create(ctx context.Context, q db.Querier, u *user.User) error
	FindAuthByEmail(ctx context.Context, email string) (*AuthSnapshot, error)
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	Update(ctx context.Context, it *item.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindDomainByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	FindBookingSnapshot(ctx context.Context, id uuid.UUID) (*ItemBookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindDomainByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ExistsOverlapping reports whether a pending or accepted booking on
	// the item intersects the window.
	ExistsOverlapping(ctx context.Context, itemID uuid.UUID, window booking.RentalWindow) (bool, error)
	// UpdateStatus flips id from one status to another; it reports
	// whether a row actually changed, so a lost race shows up as false.
	UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, from, to booking.Status) (bool, error)
}

type WalletRepository interface {
	CreateForUser(ctx context.Context, q db.Querier, userID uuid.UUID) error
	// CreditEarnings adds the rental amount to the owner's balance and
	// lifetime earnings, plus their reward points.
	CreditEarnings(ctx context.Context, q db.Querier, userID uuid.UUID, amount float64, points int) error
	AwardPoints(ctx context.Context, q db.Querier, userID uuid.UUID, points int) error
}

// PaymentAuthorization is the result of the single external
// "authorize payment" capability. The hold either exists or it doesn't;
// capture is out of scope.
type PaymentAuthorization struct {
	Reference string
	Amount    float64
	Currency  string
	Status    string
	CreatedAt time.Time
}

type PaymentGateway interface {
	Authorize(ctx context.Context, amount float64, currency string) (*PaymentAuthorization, error)
}
