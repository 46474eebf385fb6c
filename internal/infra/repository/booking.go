package repository

import (
	"context"

	"rentradar/internal/domain/booking"
	"rentradar/internal/infra"
	"rentradar/internal/infra/db"
	"rentradar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, booking_code, item_id, renter_id, owner_id,
			start_time, end_time, total_price, deposit_hold, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		b.Code(),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.RenterID()),
		pgconv.UUIDToPgtype(b.OwnerID()),
		pgconv.TimeToPgtype(b.Window().Start()),
		pgconv.TimeToPgtype(b.Window().End()),
		pgconv.Float64ToNumeric(b.TotalPrice()),
		pgconv.Float64ToNumeric(b.DepositHold()),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindDomainByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_code, item_id, renter_id, owner_id,
		       start_time, end_time, total_price, deposit_hold, status,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID   pgtype.UUID
		code        string
		itemID      pgtype.UUID
		renterID    pgtype.UUID
		ownerID     pgtype.UUID
		startTime   pgtype.Timestamptz
		endTime     pgtype.Timestamptz
		totalPrice  pgtype.Numeric
		depositHold pgtype.Numeric
		status      string
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &code, &itemID, &renterID, &ownerID,
		&startTime, &endTime, &totalPrice, &depositHold, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	statusVO, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid status", err)
	}
	total, err := pgconv.Float64FromNumeric(totalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total_price", err)
	}
	deposit, err := pgconv.Float64FromNumeric(depositHold)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deposit_hold", err)
	}

	return booking.ReconstructBooking(
		uuid.UUID(bookingID.Bytes),
		code,
		uuid.UUID(itemID.Bytes),
		uuid.UUID(renterID.Bytes),
		uuid.UUID(ownerID.Bytes),
		booking.ReconstructRentalWindow(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime)),
		total, deposit,
		statusVO,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// ExistsOverlapping checks pending and accepted bookings only; rejected and
// completed ones release the calendar. Windows are half-open, so
// back-to-back rentals sharing an instant do not collide.
func (r *BookingRepository) ExistsOverlapping(ctx context.Context, itemID uuid.UUID, window booking.RentalWindow) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1
			  AND status IN ('pending', 'accepted')
			  AND start_time < $3
			  AND end_time > $2
		)`

	var exists bool
	err := r.pool.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(itemID),
		pgconv.TimeToPgtype(window.Start()),
		pgconv.TimeToPgtype(window.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

// UpdateStatus is a compare-and-set on the status column; zero rows affected
// means another transition won the race.
func (r *BookingRepository) UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, from, to booking.Status) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := q.Exec(ctx, query, pgconv.UUIDToPgtype(id), from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
