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

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, username, email, phone, lat, lng, address_text,
		       rating_avg, total_ratings, is_active, created_at
		FROM users
		WHERE id = $1`

	var (
		userID       pgtype.UUID
		username     string
		email        string
		phone        string
		lat          pgtype.Float8
		lng          pgtype.Float8
		addressText  string
		ratingAvg    float64
		totalRatings int
		isActive     bool
		createdAt    pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&userID, &username, &email, &phone, &lat, &lng, &addressText,
		&ratingAvg, &totalRatings, &isActive, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &queries.UserView{
		ID:           userID.Bytes,
		Username:     username,
		Email:        email,
		Phone:        phone,
		Lat:          pgconv.Float64PtrFromPgtype(lat),
		Lng:          pgconv.Float64PtrFromPgtype(lng),
		AddressText:  addressText,
		RatingAvg:    ratingAvg,
		TotalRatings: totalRatings,
		IsActive:     isActive,
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
	}, nil
}
