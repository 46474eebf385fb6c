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

type WalletReadStore struct {
	pool *pgxpool.Pool
}

func NewWalletReadStore(pool *pgxpool.Pool) *WalletReadStore {
	return &WalletReadStore{pool: pool}
}

func (s *WalletReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.WalletView, error) {
	const query = `
		SELECT user_id, balance, reward_points, lifetime_earned, updated_at
		FROM wallets
		WHERE user_id = $1`

	var (
		id             pgtype.UUID
		balance        pgtype.Numeric
		rewardPoints   int
		lifetimeEarned pgtype.Numeric
		updatedAt      pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID)).Scan(
		&id, &balance, &rewardPoints, &lifetimeEarned, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("wallet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find wallet", err)
	}

	bal, err := pgconv.Float64FromNumeric(balance)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid balance", err)
	}
	earned, err := pgconv.Float64FromNumeric(lifetimeEarned)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lifetime_earned", err)
	}

	return &queries.WalletView{
		UserID:         id.Bytes,
		Balance:        bal,
		RewardPoints:   rewardPoints,
		LifetimeEarned: earned,
		UpdatedAt:      pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
