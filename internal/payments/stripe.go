package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}, nil
}

func (sg *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, bookingID string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		Metadata: map[string]string{"booking_id": bookingID},
	}

	pi, err := sg.api.PaymentIntents.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return toIntent(pi), nil
}

func (sg *StripeGateway) ConfirmIntent(ctx context.Context, intentID, paymentMethodID string, billing Billing) (*Intent, error) {
	if intentID == "" {
		return nil, fmt.Errorf("payment intent id is required")
	}
	if paymentMethodID == "" {
		return nil, fmt.Errorf("payment method id is required")
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
	}
	if billing.Email != "" {
		params.ReceiptEmail = stripe.String(billing.Email)
	}

	pi, err := sg.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
}

// wrapStripeError surfaces card failures with the provider's own message so
// the form can show it verbatim; everything else stays a plain error.
func wrapStripeError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Type == stripe.ErrorTypeCard {
		return &DeclinedError{Msg: se.Msg}
	}
	return err
}
