package readstore

import (
	"context"

	"rentradar/internal/infra"
	"rentradar/internal/pkg/pgconv"
	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.booking_code, b.item_id, i.title,
		       b.renter_id, r.username, b.owner_id, o.username,
		       b.start_time, b.end_time, b.total_price, b.deposit_hold,
		       b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users r ON r.id = b.renter_id
		JOIN users o ON o.id = b.owner_id
		WHERE b.id = $1`

	var (
		bookingID   pgtype.UUID
		code        string
		itemID      pgtype.UUID
		itemTitle   string
		renterID    pgtype.UUID
		renterName  string
		ownerID     pgtype.UUID
		ownerName   string
		startTime   pgtype.Timestamptz
		endTime     pgtype.Timestamptz
		totalPrice  pgtype.Numeric
		depositHold pgtype.Numeric
		status      string
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &code, &itemID, &itemTitle,
		&renterID, &renterName, &ownerID, &ownerName,
		&startTime, &endTime, &totalPrice, &depositHold,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	total, err := pgconv.Float64FromNumeric(totalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total_price", err)
	}
	deposit, err := pgconv.Float64FromNumeric(depositHold)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deposit_hold", err)
	}

	return &queries.BookingView{
		ID:            bookingID.Bytes,
		BookingCode:   code,
		ItemID:        itemID.Bytes,
		ItemTitle:     itemTitle,
		RenterID:      renterID.Bytes,
		RenterName:    renterName,
		OwnerID:       ownerID.Bytes,
		OwnerUsername: ownerName,
		StartTime:     pgconv.TimeFromPgtype(startTime),
		EndTime:       pgconv.TimeFromPgtype(endTime),
		TotalPrice:    total,
		DepositHold:   deposit,
		Status:        status,
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// FindByParticipant returns bookings where the user is on either side of the
// deal, newest first.
func (s *BookingReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.booking_code, b.item_id, i.title,
		       b.renter_id, b.owner_id, b.start_time, b.end_time,
		       b.total_price, b.status, b.created_at
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.renter_id = $1 OR b.owner_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*queries.BookingListItem
	for rows.Next() {
		var (
			bookingID  pgtype.UUID
			code       string
			itemID     pgtype.UUID
			itemTitle  string
			renterID   pgtype.UUID
			ownerID    pgtype.UUID
			startTime  pgtype.Timestamptz
			endTime    pgtype.Timestamptz
			totalPrice pgtype.Numeric
			status     string
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&bookingID, &code, &itemID, &itemTitle,
			&renterID, &ownerID, &startTime, &endTime,
			&totalPrice, &status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}

		total, err := pgconv.Float64FromNumeric(totalPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total_price", err)
		}

		bookings = append(bookings, &queries.BookingListItem{
			ID:          bookingID.Bytes,
			BookingCode: code,
			ItemID:      itemID.Bytes,
			ItemTitle:   itemTitle,
			RenterID:    renterID.Bytes,
			OwnerID:     ownerID.Bytes,
			StartTime:   pgconv.TimeFromPgtype(startTime),
			EndTime:     pgconv.TimeFromPgtype(endTime),
			TotalPrice:  total,
			Status:      status,
			CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return bookings, nil
}
