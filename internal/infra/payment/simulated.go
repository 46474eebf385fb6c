package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentradar/internal/pkg/errs"
	"rentradar/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errs.New("authorization amount must be positive")

// SimulatedGateway stands in for a card processor. It accepts every
// positive hold and fabricates a reference; nothing is charged.
type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, amount float64, currency string) (*commands.PaymentAuthorization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ref := fmt.Sprintf("sim_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:24])
	return &commands.PaymentAuthorization{
		Reference: ref,
		Amount:    amount,
		Currency:  currency,
		Status:    "authorized",
		CreatedAt: time.Now().UTC(),
	}, nil
}
