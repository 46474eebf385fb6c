package repository

import (
	"context"

	"rentradar/internal/infra"
	"rentradar/internal/infra/db"
	"rentradar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletRepository struct {
	pool *pgxpool.Pool
}

func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

func (r *WalletRepository) CreateForUser(ctx context.Context, q db.Querier, userID uuid.UUID) error {
	_, err := q.Exec(ctx,
		`INSERT INTO wallets (user_id) VALUES ($1)`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create wallet", err)
	}
	return nil
}

func (r *WalletRepository) CreditEarnings(ctx context.Context, q db.Querier, userID uuid.UUID, amount float64, points int) error {
	const query = `
		UPDATE wallets
		SET balance = balance + $2,
		    lifetime_earned = lifetime_earned + $2,
		    reward_points = reward_points + $3,
		    updated_at = now()
		WHERE user_id = $1`

	tag, err := q.Exec(ctx, query, pgconv.UUIDToPgtype(userID), pgconv.Float64ToNumeric(amount), points)
	if err != nil {
		return infra.WrapRepoErr("failed to credit wallet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wallet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WalletRepository) AwardPoints(ctx context.Context, q db.Querier, userID uuid.UUID, points int) error {
	const query = `
		UPDATE wallets
		SET reward_points = reward_points + $2, updated_at = now()
		WHERE user_id = $1`

	tag, err := q.Exec(ctx, query, pgconv.UUIDToPgtype(userID), points)
	if err != nil {
		return infra.WrapRepoErr("failed to award points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wallet not found", nil, infra.KindNotFound)
	}
	return nil
}
