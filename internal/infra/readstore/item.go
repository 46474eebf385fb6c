package readstore

import (
	"context"

	"rentradar/internal/infra"
	"rentradar/internal/pkg/pgconv"
	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

const itemListColumns = `
	i.id, i.owner_id, u.username, i.title, i.category,
	i.price_per_hour, i.price_per_day, i.address_text,
	i.lat, i.lng, i.photo_url, i.is_available, i.created_at`

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const query = `
		SELECT i.id, i.owner_id, u.username, i.title, i.description, i.category,
		       i.price_per_hour, i.price_per_day, i.deposit, i.address_text,
		       i.lat, i.lng, i.photo_url, i.is_available, i.created_at, i.updated_at
		FROM items i
		JOIN users u ON u.id = i.owner_id
		WHERE i.id = $1`

	var (
		itemID       pgtype.UUID
		ownerID      pgtype.UUID
		username     string
		title        string
		description  string
		category     string
		pricePerHour pgtype.Numeric
		pricePerDay  pgtype.Numeric
		deposit      pgtype.Numeric
		addressText  string
		lat          pgtype.Float8
		lng          pgtype.Float8
		photoURL     string
		isAvailable  bool
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&itemID, &ownerID, &username, &title, &description, &category,
		&pricePerHour, &pricePerDay, &deposit, &addressText,
		&lat, &lng, &photoURL, &isAvailable, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}

	hourly, err := pgconv.Float64FromNumeric(pricePerHour)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price_per_hour", err)
	}
	daily, err := pgconv.Float64PtrFromNumeric(pricePerDay)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price_per_day", err)
	}
	dep, err := pgconv.Float64PtrFromNumeric(deposit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deposit", err)
	}

	return &queries.ItemView{
		ID:            itemID.Bytes,
		OwnerID:       ownerID.Bytes,
		OwnerUsername: username,
		Title:         title,
		Description:   description,
		Category:      category,
		PricePerHour:  hourly,
		PricePerDay:   daily,
		Deposit:       dep,
		AddressText:   addressText,
		Lat:           pgconv.Float64PtrFromPgtype(lat),
		Lng:           pgconv.Float64PtrFromPgtype(lng),
		PhotoURL:      photoURL,
		IsAvailable:   isAvailable,
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *ItemReadStore) FindLatest(ctx context.Context, limit int32) ([]*queries.ItemListItem, error) {
	const query = `
		SELECT ` + itemListColumns + `
		FROM items i
		JOIN users u ON u.id = i.owner_id
		WHERE i.is_available = true
		ORDER BY i.created_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	return scanItemList(rows)
}

// FindWithinBounds is the coarse geographic prefilter; the caller applies
// the exact distance pass. Items without coordinates never match.
func (s *ItemReadStore) FindWithinBounds(ctx context.Context, filter queries.BoundsFilter) ([]*queries.ItemListItem, error) {
	const query = `
		SELECT ` + itemListColumns + `
		FROM items i
		JOIN users u ON u.id = i.owner_id
		WHERE i.is_available = true
		  AND i.lat IS NOT NULL AND i.lng IS NOT NULL
		  AND i.lat BETWEEN $1 AND $2
		  AND i.lng BETWEEN $3 AND $4
		  AND ($5::text IS NULL OR i.category = $5)
		  AND ($6::numeric IS NULL OR i.price_per_hour >= $6)
		  AND ($7::numeric IS NULL OR i.price_per_hour <= $7)`

	rows, err := s.pool.Query(ctx, query,
		filter.MinLat, filter.MaxLat, filter.MinLng, filter.MaxLng,
		pgconv.StringPtrToPgtype(filter.Category),
		pgconv.Float64PtrToNumeric(filter.MinPrice),
		pgconv.Float64PtrToNumeric(filter.MaxPrice),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	return scanItemList(rows)
}

func scanItemList(rows pgx.Rows) ([]*queries.ItemListItem, error) {
	var items []*queries.ItemListItem
	for rows.Next() {
		var (
			itemID       pgtype.UUID
			ownerID      pgtype.UUID
			username     string
			title        string
			category     string
			pricePerHour pgtype.Numeric
			pricePerDay  pgtype.Numeric
			addressText  string
			lat          pgtype.Float8
			lng          pgtype.Float8
			photoURL     string
			isAvailable  bool
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&itemID, &ownerID, &username, &title, &category,
			&pricePerHour, &pricePerDay, &addressText,
			&lat, &lng, &photoURL, &isAvailable, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}

		hourly, err := pgconv.Float64FromNumeric(pricePerHour)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid price_per_hour", err)
		}
		daily, err := pgconv.Float64PtrFromNumeric(pricePerDay)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid price_per_day", err)
		}

		items = append(items, &queries.ItemListItem{
			ID:            itemID.Bytes,
			OwnerID:       ownerID.Bytes,
			OwnerUsername: username,
			Title:         title,
			Category:      category,
			PricePerHour:  hourly,
			PricePerDay:   daily,
			AddressText:   addressText,
			Lat:           pgconv.Float64PtrFromPgtype(lat),
			Lng:           pgconv.Float64PtrFromPgtype(lng),
			PhotoURL:      photoURL,
			IsAvailable:   isAvailable,
			CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return items, nil
}
