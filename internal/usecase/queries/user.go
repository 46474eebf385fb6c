package queries

import (
	"context"

	"rentradar/internal/infra"
	"rentradar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user account is inactive")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type WalletReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type userQueriesImpl struct {
	users   UserReadStore
	wallets WalletReadStore
}

func NewUserQueries(users UserReadStore, wallets WalletReadStore) UserQueries {
	return &userQueriesImpl{users: users, wallets: wallets}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	return view, nil
}

func (q *userQueriesImpl) GetWallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	view, err := q.wallets.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return view, nil
}
