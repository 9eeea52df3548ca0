package service

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentService creates a payment intent for an amount in minor units and
// returns the client-side secret used to complete the charge.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type stripePayment struct{}

func NewPaymentService(secretKey string) PaymentService {
	stripe.Key = secretKey
	return &stripePayment{}
}

func (s *stripePayment) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
