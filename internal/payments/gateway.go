// Package payments wraps the hosted card network. The service layer talks to
// the Gateway interface only, so tests can stand in a fake and the Stripe
// client stays at the edge.
package payments

import "context"

const (
	StatusSucceeded       = "succeeded"
	StatusRequiresAction  = "requires_action"
	StatusRequiresPayment = "requires_payment_method"
)

// Intent is the service-side view of a payment intent: a single-use handle
// authorizing a charge of a fixed amount.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Billing carries the traveler's name and email for the confirmation call.
type Billing struct {
	Name  string
	Email string
}

// DeclinedError is a user-facing card failure (declined, bad number, expired).
// Its message is the provider's own text and is safe to show inline.
type DeclinedError struct {
	Msg string
}

func (e *DeclinedError) Error() string {
	return e.Msg
}

type Gateway interface {
	// CreateIntent opens an intent for the amount in the smallest currency
	// unit (cents), tagged with the booking it pays for.
	CreateIntent(ctx context.Context, amountCents int64, currency, bookingID string) (*Intent, error)

	// ConfirmIntent confirms the intent with a tokenized payment method and
	// returns the terminal intent state. Card failures come back as
	// *DeclinedError.
	ConfirmIntent(ctx context.Context, intentID, paymentMethodID string, billing Billing) (*Intent, error)
}
