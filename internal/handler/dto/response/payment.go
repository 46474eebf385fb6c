package response

import (
	"time"

	"rentradar/internal/usecase/commands"
)

type PaymentAuthorizationResponse struct {
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentAuthorization(auth *commands.PaymentAuthorization) *PaymentAuthorizationResponse {
	return &PaymentAuthorizationResponse{
		Reference: auth.Reference,
		Amount:    auth.Amount,
		Currency:  auth.Currency,
		Status:    auth.Status,
		CreatedAt: auth.CreatedAt,
	}
}
