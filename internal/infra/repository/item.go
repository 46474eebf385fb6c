package repository

import (
	"context"

	"rentradar/internal/domain/item"
	"rentradar/internal/infra"
	"rentradar/internal/pkg/errs"
	"rentradar/internal/pkg/pgconv"
	"rentradar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	const query = `
		INSERT INTO items (
			id, owner_id, title, description, category,
			price_per_hour, price_per_day, deposit,
			address_text, lat, lng, photo_url, is_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(it.ID()),
		pgconv.UUIDToPgtype(it.OwnerID()),
		it.Title().Value(),
		it.Description(),
		it.Category().String(),
		pgconv.Float64ToNumeric(it.Rates().PricePerHour()),
		pgconv.Float64PtrToNumeric(it.Rates().PricePerDay()),
		pgconv.Float64PtrToNumeric(it.Rates().Deposit()),
		it.Location().AddressText(),
		pgconv.Float64PtrToPgtype(it.Location().Lat()),
		pgconv.Float64PtrToPgtype(it.Location().Lng()),
		it.PhotoURL(),
		it.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	const query = `
		UPDATE items SET
			title = $2, description = $3, category = $4,
			price_per_hour = $5, price_per_day = $6, deposit = $7,
			address_text = $8, lat = $9, lng = $10,
			photo_url = $11, is_available = $12, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(it.ID()),
		it.Title().Value(),
		it.Description(),
		it.Category().String(),
		pgconv.Float64ToNumeric(it.Rates().PricePerHour()),
		pgconv.Float64PtrToNumeric(it.Rates().PricePerDay()),
		pgconv.Float64PtrToNumeric(it.Rates().Deposit()),
		it.Location().AddressText(),
		pgconv.Float64PtrToPgtype(it.Location().Lat()),
		pgconv.Float64PtrToPgtype(it.Location().Lng()),
		it.PhotoURL(),
		it.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindDomainByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const query = `
		SELECT id, owner_id, title, description, category,
		       price_per_hour, price_per_day, deposit,
		       address_text, lat, lng, photo_url, is_available,
		       created_at, updated_at
		FROM items
		WHERE id = $1`

	var (
		itemID       pgtype.UUID
		ownerID      pgtype.UUID
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
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&itemID, &ownerID, &title, &description, &category,
		&pricePerHour, &pricePerDay, &deposit,
		&addressText, &lat, &lng, &photoURL, &isAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}

	return reconstructItem(
		itemID, ownerID, title, description, category,
		pricePerHour, pricePerDay, deposit,
		addressText, lat, lng, photoURL, isAvailable,
		createdAt, updatedAt,
	)
}

func (r *ItemRepository) FindBookingSnapshot(ctx context.Context, id uuid.UUID) (*commands.ItemBookingSnapshot, error) {
	const query = `
		SELECT id, owner_id, title, price_per_hour, price_per_day, deposit, is_available
		FROM items
		WHERE id = $1`

	var (
		itemID       pgtype.UUID
		ownerID      pgtype.UUID
		title        string
		pricePerHour pgtype.Numeric
		pricePerDay  pgtype.Numeric
		deposit      pgtype.Numeric
		isAvailable  bool
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&itemID, &ownerID, &title, &pricePerHour, &pricePerDay, &deposit, &isAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item snapshot", err)
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

	return &commands.ItemBookingSnapshot{
		ID:           itemID.Bytes,
		OwnerID:      ownerID.Bytes,
		Title:        title,
		PricePerHour: hourly,
		PricePerDay:  daily,
		Deposit:      dep,
		IsAvailable:  isAvailable,
	}, nil
}

func reconstructItem(
	id, ownerID pgtype.UUID,
	title, description, category string,
	pricePerHour, pricePerDay, deposit pgtype.Numeric,
	addressText string,
	lat, lng pgtype.Float8,
	photoURL string,
	isAvailable bool,
	createdAt, updatedAt pgtype.Timestamptz,
) (*item.Item, error) {
	titleVO, err := item.NewTitle(title)
	if err != nil {
		return nil, errs.Wrap(err, "stored item has an invalid title")
	}
	categoryVO, err := item.NewCategory(category)
	if err != nil {
		return nil, errs.Wrap(err, "stored item has an invalid category")
	}

	hourly, err := pgconv.Float64FromNumeric(pricePerHour)
	if err != nil {
		return nil, errs.Wrap(err, "invalid price_per_hour")
	}
	daily, err := pgconv.Float64PtrFromNumeric(pricePerDay)
	if err != nil {
		return nil, errs.Wrap(err, "invalid price_per_day")
	}
	dep, err := pgconv.Float64PtrFromNumeric(deposit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid deposit")
	}
	rates, err := item.NewRateCard(hourly, daily, dep)
	if err != nil {
		return nil, errs.Wrap(err, "stored item has an invalid rate card")
	}

	location, err := item.NewLocation(addressText, pgconv.Float64PtrFromPgtype(lat), pgconv.Float64PtrFromPgtype(lng))
	if err != nil {
		return nil, errs.Wrap(err, "stored item has an invalid location")
	}

	return item.ReconstructItem(
		uuid.UUID(id.Bytes), uuid.UUID(ownerID.Bytes),
		titleVO, description, categoryVO, rates, location,
		photoURL, isAvailable,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
