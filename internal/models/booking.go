package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending  = "pending"
	BookingInReview = "in-review"
	BookingAccepted = "accepted"
	BookingRejected = "rejected"
)

// bookingTransitions is the full lifecycle graph. Payment moves a pending
// booking into review; the assigned guide settles it from there. Cancellation
// is modelled as deletion and only allowed while pending, see CanCancel.
var bookingTransitions = map[string][]string{
	BookingPending:  {BookingInReview},
	BookingInReview: {BookingAccepted, BookingRejected},
}

// CanTransition reports whether a status change is legal. Illegal requests
// are rejected locally before any storage call.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is a traveler's reservation against a package.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PackageID    primitive.ObjectID `bson:"package_id" json:"package_id" validate:"required"`
	PackageName  string             `bson:"package_name" json:"package_name"`
	TouristName  string             `bson:"tourist_name" json:"tourist_name"`
	TouristEmail string             `bson:"tourist_email" json:"tourist_email" validate:"required,email"`
	GuideEmail   string             `bson:"guide_email" json:"guide_email" validate:"required,email"`
	GuideName    string             `bson:"guide_name" json:"guide_name"`
	TourDate     time.Time          `bson:"tour_date" json:"tour_date" validate:"required"`
	Price        float64            `bson:"price" json:"price"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// CanPay reports whether the pay action is available for this booking.
func (b *Booking) CanPay() bool {
	return b.Status == BookingPending
}

// CanCancel reports whether the traveler may still delete this booking.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingPending
}

// IsSettled reports whether the booking is in a terminal, display-only state.
func (b *Booking) IsSettled() bool {
	return b.Status == BookingAccepted || b.Status == BookingRejected
}

// Actions lists the controls a bookings view should expose for the current
// status. Anything other than pending exposes none.
func (b *Booking) Actions() []string {
	if b.Status == BookingPending {
		return []string{"pay", "cancel"}
	}
	return nil
}
