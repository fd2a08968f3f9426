// Package paymentgateway provides payment gateway implementations.
package paymentgateway

import (
	"context"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dummy authorizes every payment and fabricates a payment identifier.
// It stands in for a real acquirer integration.
type Dummy struct{}

// NewDummy returns a Dummy gateway.
func NewDummy() *Dummy {
	return &Dummy{}
}

// ProcessPayment returns a fresh payment identifier for the given amount.
func (g *Dummy) ProcessPayment(ctx context.Context, amount domain.Money, description, payerReference string) (uuid.UUID, error) {
	l := zerolog.Ctx(ctx)

	paymentID := uuid.New()

	l.Info().
		Str("payment_id", paymentID.String()).
		Str("amount", amount.String()).
		Str("description", description).
		Str("payer_reference", payerReference).
		Msg("payment authorized")

	return paymentID, nil
}
