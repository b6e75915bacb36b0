package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error)
	ListBookingsByProvider(ctx context.Context, providerID uuid.UUID) ([]*Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*Booking, error)
	CountBookings(ctx context.Context) (int64, error)
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(DBName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	col, err := mdb.GetCollection(DBName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking by ID: %v", err)
	}

	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"customer_id": customerID})
}

func (mdb *MongodbRepo) ListBookingsByProvider(ctx context.Context, providerID uuid.UUID) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"provider_id": providerID})
}

func (mdb *MongodbRepo) listBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(DBName, BookingColName)
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
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

// UpdateBookingStatus is a single-document write; concurrent updates to the
// same booking resolve last-write-wins at the storage layer.
func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*Booking, error) {
	col, err := mdb.GetCollection(DBName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	err = col.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) CountBookings(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(DBName, BookingColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %v", err)
	}

	return count, nil
}
