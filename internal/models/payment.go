package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is the durable trace of a successful charge. At most one
// record exists per booking; the repo refuses duplicates so a retried
// record write after a charge stays idempotent.
type PaymentRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID     primitive.ObjectID `bson:"booking_id" json:"booking_id" validate:"required"`
	PackageID     primitive.ObjectID `bson:"package_id" json:"package_id"`
	Cost          float64            `bson:"cost" json:"cost" validate:"required,gt=0"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id" validate:"required"`
	UserEmail     string             `bson:"user_email" json:"user_email" validate:"required,email"`
	PaymentDate   time.Time          `bson:"payment_date" json:"payment_date"`
}
