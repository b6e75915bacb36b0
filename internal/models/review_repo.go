package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	ListReviewsByProvider(ctx context.Context, providerID uuid.UUID) ([]*Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	col, err := mdb.GetCollection(DBName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, review); err != nil {
		return nil, fmt.Errorf("error inserting review: %v", err)
	}

	return review, nil
}

func (mdb *MongodbRepo) ListReviewsByProvider(ctx context.Context, providerID uuid.UUID) ([]*Review, error) {
	col, err := mdb.GetCollection(DBName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*Review
	for cursor.Next(ctx) {
		var review Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("error decoding review: %v", err)
		}
		reviews = append(reviews, &review)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return reviews, nil
}
