package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{BookingPending, BookingInReview, true},
		{BookingInReview, BookingAccepted, true},
		{BookingInReview, BookingRejected, true},
		{BookingPending, BookingAccepted, false},
		{BookingPending, BookingRejected, false},
		{BookingInReview, BookingPending, false},
		{BookingAccepted, BookingRejected, false},
		{BookingRejected, BookingPending, false},
		{BookingAccepted, BookingInReview, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestActionsOnlyForPending(t *testing.T) {
	pending := &Booking{Status: BookingPending}
	actions := pending.Actions()
	if len(actions) != 2 || actions[0] != "pay" || actions[1] != "cancel" {
		t.Errorf("pending booking actions = %v, want [pay cancel]", actions)
	}

	for _, status := range []string{BookingInReview, BookingAccepted, BookingRejected} {
		b := &Booking{Status: status}
		if got := b.Actions(); len(got) != 0 {
			t.Errorf("booking with status %q exposes actions %v, want none", status, got)
		}
		if b.CanPay() {
			t.Errorf("booking with status %q must not be payable", status)
		}
		if b.CanCancel() {
			t.Errorf("booking with status %q must not be cancellable", status)
		}
	}
}

func TestIsSettled(t *testing.T) {
	for status, want := range map[string]bool{
		BookingPending:  false,
		BookingInReview: false,
		BookingAccepted: true,
		BookingRejected: true,
	} {
		b := &Booking{Status: status}
		if got := b.IsSettled(); got != want {
			t.Errorf("IsSettled() for %q = %v, want %v", status, got, want)
		}
	}
}
