package repository

import (
	"context"

	"rentradar/internal/domain/user"
	"rentradar/internal/infra"
	"rentradar/internal/infra/db"
	"rentradar/internal/pkg/pgconv"
	"rentradar/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, q db.Querier, u *user.User) error {
	const query = `
		INSERT INTO users (
			id, username, email, password_hash, phone,
			lat, lng, address_text, rating_avg, total_ratings, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := q.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Username().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Phone(),
		pgconv.Float64PtrToPgtype(u.Lat()),
		pgconv.Float64PtrToPgtype(u.Lng()),
		u.AddressText(),
		u.RatingAvg(),
		u.TotalRatings(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindAuthByEmail(ctx context.Context, email string) (*commands.AuthSnapshot, error) {
	const query = `
		SELECT id, username, password_hash, is_active
		FROM users
		WHERE email = $1`

	var (
		id           pgtype.UUID
		username     string
		passwordHash string
		isActive     bool
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(&id, &username, &passwordHash, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &commands.AuthSnapshot{
		ID:           id.Bytes,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     isActive,
	}, nil
}
