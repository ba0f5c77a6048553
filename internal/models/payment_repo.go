package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepo interface {
	CreatePaymentRecord(ctx context.Context, record *PaymentRecord) (*PaymentRecord, error)
	GetPaymentByBooking(ctx context.Context, bookingID primitive.ObjectID) (*PaymentRecord, error)
}

// CreatePaymentRecord inserts the record unless one already exists for the
// booking. The existence check plus the unique index on booking_id keeps the
// write idempotent, so it is safe to retry after a transient failure.
func (mdb *MongodbRepo) CreatePaymentRecord(ctx context.Context, record *PaymentRecord) (*PaymentRecord, error) {
	col, err := mdb.GetCollection(ctx, DBName, PaymentsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var existing PaymentRecord
	err = col.FindOne(ctx, bson.M{"booking_id": record.BookingID}).Decode(&existing)
	if err == nil {
		return nil, fmt.Errorf("payment already recorded for booking %s", record.BookingID.Hex())
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error checking existing payment: %v", err)
	}

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("payment already recorded for booking %s", record.BookingID.Hex())
		}
		return nil, fmt.Errorf("error inserting payment record: %v", err)
	}

	return record, nil
}

func (mdb *MongodbRepo) GetPaymentByBooking(ctx context.Context, bookingID primitive.ObjectID) (*PaymentRecord, error) {
	col, err := mdb.GetCollection(ctx, DBName, PaymentsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var record PaymentRecord
	if err := col.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding payment record: %v", err)
	}

	return &record, nil
}
