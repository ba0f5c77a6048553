package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/payments"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPaymentFixture(t *testing.T, status string) (*PaymentService, *fakeBookingRepo, *fakePaymentRepo, *fakeGateway, *models.Booking) {
	t.Helper()

	bookingRepo := newFakeBookingRepo()
	booking, err := bookingRepo.CreateBooking(context.Background(), &models.Booking{
		PackageID:    primitive.NewObjectID(),
		PackageName:  "Sundarbans Delta Expedition",
		TouristName:  "Salma Khatun",
		TouristEmail: "tourist@roamio.app",
		GuideEmail:   "guide@roamio.app",
		TourDate:     time.Now().AddDate(0, 0, 7),
		Price:        500,
		Status:       status,
	})
	if err != nil {
		t.Fatalf("seeding booking: %v", err)
	}

	paymentRepo := newFakePaymentRepo()
	gateway := &fakeGateway{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPaymentService(gateway, bookingRepo, paymentRepo, logger)
	return svc, bookingRepo, paymentRepo, gateway, booking
}

func TestCreateIntentChargesBookingPrice(t *testing.T) {
	svc, _, _, gateway, booking := newPaymentFixture(t, models.BookingPending)

	intent, err := svc.CreateIntent(context.Background(), booking.ID, "tourist@roamio.app")
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if intent.ClientSecret == "" {
		t.Error("intent has no client secret for the card widget")
	}
	if gateway.createCalls != 1 {
		t.Errorf("gateway create calls = %d, want 1", gateway.createCalls)
	}
}

func TestCreateIntentRefusedForNonOwner(t *testing.T) {
	svc, _, _, gateway, booking := newPaymentFixture(t, models.BookingPending)

	if _, err := svc.CreateIntent(context.Background(), booking.ID, "somebody@else.com"); err == nil {
		t.Fatal("expected intent for someone else's booking to be refused")
	}
	if gateway.createCalls != 0 {
		t.Error("refused intent must not reach the gateway")
	}
}

func TestCreateIntentRefusedWhenNotPending(t *testing.T) {
	for _, status := range []string{models.BookingInReview, models.BookingAccepted, models.BookingRejected} {
		svc, _, _, gateway, booking := newPaymentFixture(t, status)

		if _, err := svc.CreateIntent(context.Background(), booking.ID, "tourist@roamio.app"); err == nil {
			t.Errorf("expected intent for %s booking to be refused", status)
		}
		if gateway.createCalls != 0 {
			t.Errorf("refused intent for %s booking must not reach the gateway", status)
		}
	}
}

func TestConfirmRecordsExactlyOnePayment(t *testing.T) {
	svc, bookingRepo, paymentRepo, gateway, booking := newPaymentFixture(t, models.BookingPending)

	record, err := svc.ConfirmAndRecord(context.Background(), booking.ID, "pi_test_1", "pm_card", "Salma Khatun", "tourist@roamio.app")
	if err != nil {
		t.Fatalf("ConfirmAndRecord: %v", err)
	}

	if len(paymentRepo.records) != 1 {
		t.Fatalf("payment records = %d, want exactly 1", len(paymentRepo.records))
	}
	if record.Cost != 500 {
		t.Errorf("recorded cost = %v, want 500", record.Cost)
	}
	if record.BookingID != booking.ID {
		t.Errorf("recorded booking id = %s, want %s", record.BookingID.Hex(), booking.ID.Hex())
	}
	if record.TransactionID != "pi_test_1" {
		t.Errorf("recorded transaction id = %q, want the intent id", record.TransactionID)
	}

	if got := bookingRepo.bookings[booking.ID].Status; got != models.BookingInReview {
		t.Errorf("booking status after payment = %q, want %q", got, models.BookingInReview)
	}
	if gateway.confirmCalls != 1 {
		t.Errorf("gateway confirm calls = %d, want 1", gateway.confirmCalls)
	}

	// A retry after success finds the record and never reaches the gateway again.
	if _, err := svc.ConfirmAndRecord(context.Background(), booking.ID, "pi_test_1", "pm_card", "Salma Khatun", "tourist@roamio.app"); err == nil {
		t.Fatal("expected a second confirm on the same booking to be refused")
	}
	if len(paymentRepo.records) != 1 {
		t.Errorf("payment records after retry = %d, want still 1", len(paymentRepo.records))
	}
	if gateway.confirmCalls != 1 {
		t.Errorf("gateway confirm calls after retry = %d, want still 1", gateway.confirmCalls)
	}
}

func TestConfirmDeclinedCardWritesNothing(t *testing.T) {
	svc, bookingRepo, paymentRepo, gateway, booking := newPaymentFixture(t, models.BookingPending)
	gateway.confirmErr = &payments.DeclinedError{Msg: "Your card was declined."}

	_, err := svc.ConfirmAndRecord(context.Background(), booking.ID, "pi_test_1", "pm_card", "Salma Khatun", "tourist@roamio.app")
	if err == nil {
		t.Fatal("expected declined card to surface as an error")
	}
	if err.Error() != "Your card was declined." {
		t.Errorf("declined error = %q, want the processor's message verbatim", err.Error())
	}

	if len(paymentRepo.records) != 0 {
		t.Errorf("payment records after decline = %d, want 0", len(paymentRepo.records))
	}
	if got := bookingRepo.bookings[booking.ID].Status; got != models.BookingPending {
		t.Errorf("booking status after decline = %q, want still pending", got)
	}
}

func TestConfirmNonSucceededStatusWritesNothing(t *testing.T) {
	svc, bookingRepo, paymentRepo, gateway, booking := newPaymentFixture(t, models.BookingPending)
	gateway.confirmStatus = payments.StatusRequiresAction

	if _, err := svc.ConfirmAndRecord(context.Background(), booking.ID, "pi_test_1", "pm_card", "Salma Khatun", "tourist@roamio.app"); err == nil {
		t.Fatal("expected a non-succeeded confirmation to surface as an error")
	}
	if len(paymentRepo.records) != 0 {
		t.Errorf("payment records = %d, want 0", len(paymentRepo.records))
	}
	if got := bookingRepo.bookings[booking.ID].Status; got != models.BookingPending {
		t.Errorf("booking status = %q, want still pending", got)
	}
}

func TestConfirmRecordWriteFailureNamesTransaction(t *testing.T) {
	svc, _, paymentRepo, _, booking := newPaymentFixture(t, models.BookingPending)
	paymentRepo.createErr = fmt.Errorf("write concern timeout")

	_, err := svc.ConfirmAndRecord(context.Background(), booking.ID, "pi_test_1", "pm_card", "Salma Khatun", "tourist@roamio.app")
	if err == nil {
		t.Fatal("expected record write failure to surface as an error")
	}
	// The card has been charged at this point; the error must carry the
	// transaction id so support can reconcile manually.
	if !strings.Contains(err.Error(), "pi_test_1") {
		t.Errorf("error %q does not name the transaction id", err.Error())
	}
	if !strings.Contains(err.Error(), "payment captured") {
		t.Errorf("error %q does not tell the caller the charge went through", err.Error())
	}
}
