package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookingsByTourist(ctx context.Context, email string) ([]*Booking, error)
	ListBookingsByGuide(ctx context.Context, email string) ([]*Booking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to string) error
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}

	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByTourist(ctx context.Context, email string) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"tourist_email": email})
}

func (mdb *MongodbRepo) ListBookingsByGuide(ctx context.Context, email string) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"guide_email": email})
}

func (mdb *MongodbRepo) listBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}

	return bookings, nil
}

// UpdateBookingStatus performs a compare-and-set on the status field. The
// filter includes the expected current status, so two concurrent callers
// racing on the same transition cannot both win.
func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to string) error {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking status: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking is no longer %s", from)
	}

	return nil
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}
