package commands

import (
	"context"
	"time"

	"rentradar/internal/domain/user"
	"rentradar/internal/infra"
	"rentradar/internal/infra/db"
	"rentradar/internal/pkg/errs"
	"rentradar/internal/pkg/jwt"
	"rentradar/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAccountTaken       = errs.New("email or username already in use")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountDisabled    = errs.New("account is disabled")
)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Phone       string
	AddressText string
	Lat         *float64
	Lng         *float64
}

// AuthSession is what a successful register or login hands back to the
// handler: enough to set the cookie and render the session response.
type AuthSession struct {
	UserID    uuid.UUID
	Username  string
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthSession, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthSession, error)
}

type authCommandsImpl struct {
	pool    *pgxpool.Pool
	users   UserRepository
	wallets WalletRepository
	tokens  *jwt.Service
}

func NewAuthCommands(
	pool *pgxpool.Pool,
	users UserRepository,
	wallets WalletRepository,
	tokens *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		pool:    pool,
		users:   users,
		wallets: wallets,
		tokens:  tokens,
	}
}

// Register creates the account and its empty wallet atomically, then signs
// the user in.
func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthSession, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(in.Password); err != nil {
		return nil, err
	}

	profile, err := user.NewProfile(in.Phone, in.AddressText, in.Lat, in.Lng)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(username, email, hash, profile)

	err = db.WithinTx(ctx, c.pool, func(tx pgx.Tx) error {
		if err := c.users.Create(ctx, tx, u); err != nil {
			return err
		}
		return c.wallets.CreateForUser(ctx, tx, u.ID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrAccountTaken)
		}
		return nil, err
	}

	return c.issueSession(u.ID(), username.Value())
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*AuthSession, error) {
	snap, err := c.users.FindAuthByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password so probes can't tell
			// registered emails apart.
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return nil, ErrAccountDisabled
	}

	return c.issueSession(snap.ID, snap.Username)
}

func (c *authCommandsImpl) issueSession(userID uuid.UUID, username string) (*AuthSession, error) {
	token, err := c.tokens.GenerateToken(userID, username)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &AuthSession{
		UserID:    userID,
		Username:  username,
		Token:     token,
		ExpiresAt: time.Now().Add(c.tokens.TokenDuration()),
	}, nil
}
