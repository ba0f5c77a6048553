package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/payments"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService struct {
	gateway     payments.Gateway
	bookingRepo models.BookingRepo
	paymentRepo models.PaymentRepo
	logger      *slog.Logger
}

func NewPaymentService(gateway payments.Gateway, bookingRepo models.BookingRepo, paymentRepo models.PaymentRepo, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// checkPayable re-verifies the booking immediately before any charge-related
// step: the caller must own it, it must still be pending, and no payment may
// already be recorded. Two sessions racing on the same booking both pass the
// client-side check; this server-side recheck is what actually guards the
// charge.
func (ps *PaymentService) checkPayable(ctx context.Context, bookingID primitive.ObjectID, payerEmail string) (*models.Booking, error) {
	booking, err := ps.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TouristEmail != payerEmail {
		return nil, fmt.Errorf("you can only pay for your own bookings")
	}
	if !booking.CanPay() {
		return nil, fmt.Errorf("booking is %s, only pending bookings can be paid", booking.Status)
	}

	record, err := ps.paymentRepo.GetPaymentByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return nil, fmt.Errorf("booking already has a recorded payment (transaction %s)", record.TransactionID)
	}

	return booking, nil
}

// CreateIntent opens a payment intent scoped to the booking's price and
// returns its id and client secret for the card widget.
func (ps *PaymentService) CreateIntent(ctx context.Context, bookingID primitive.ObjectID, payerEmail string) (*payments.Intent, error) {
	booking, err := ps.checkPayable(ctx, bookingID, payerEmail)
	if err != nil {
		return nil, err
	}

	amountCents := int64(math.Round(booking.Price * 100))
	intent, err := ps.gateway.CreateIntent(ctx, amountCents, "usd", bookingID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %v", err)
	}

	return intent, nil
}

// ConfirmAndRecord confirms the intent with the tokenized card and, only on a
// terminal succeeded status, writes exactly one PaymentRecord and moves the
// booking into review. A failed confirmation writes nothing.
func (ps *PaymentService) ConfirmAndRecord(ctx context.Context, bookingID primitive.ObjectID, intentID, paymentMethodID, payerName, payerEmail string) (*models.PaymentRecord, error) {
	booking, err := ps.checkPayable(ctx, bookingID, payerEmail)
	if err != nil {
		return nil, err
	}

	intent, err := ps.gateway.ConfirmIntent(ctx, intentID, paymentMethodID, payments.Billing{
		Name:  payerName,
		Email: payerEmail,
	})
	if err != nil {
		return nil, err
	}

	if intent.Status != payments.StatusSucceeded {
		return nil, fmt.Errorf("payment not completed, intent status is %s", intent.Status)
	}

	record := &models.PaymentRecord{
		BookingID:     booking.ID,
		PackageID:     booking.PackageID,
		Cost:          booking.Price,
		TransactionID: intent.ID,
		UserEmail:     payerEmail,
		PaymentDate:   time.Now(),
	}

	// Past this point the card has been charged. Record and transition
	// failures must never be silent: log with the transaction id so a
	// reconciliation pass can find the divergence, and tell the caller the
	// charge went through.
	if _, err := ps.paymentRepo.CreatePaymentRecord(ctx, record); err != nil {
		ps.logger.Error("charge succeeded but payment record write failed",
			"booking_id", bookingID.Hex(),
			"transaction_id", intent.ID,
			"error", err,
		)
		return nil, fmt.Errorf("payment captured (transaction %s) but recording it failed: %v", intent.ID, err)
	}

	if err := ps.bookingRepo.UpdateBookingStatus(ctx, bookingID, models.BookingPending, models.BookingInReview); err != nil {
		ps.logger.Error("payment recorded but booking status transition failed",
			"booking_id", bookingID.Hex(),
			"transaction_id", intent.ID,
			"error", err,
		)
		return nil, fmt.Errorf("payment recorded (transaction %s) but booking update failed: %v", intent.ID, err)
	}

	return record, nil
}
