package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepo interface {
	CreateService(ctx context.Context, service *Service) (*Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Service, error)
	QueryServices(ctx context.Context, filter ServiceFilter) ([]*Service, error)
	ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

func (mdb *MongodbRepo) CreateService(ctx context.Context, service *Service) (*Service, error) {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, service); err != nil {
		return nil, fmt.Errorf("error inserting service: %v", err)
	}

	return service, nil
}

func (mdb *MongodbRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var service Service
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding service by ID: %v", err)
	}

	return &service, nil
}

func (mdb *MongodbRepo) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Service, error) {
	services := make(map[uuid.UUID]*Service, len(ids))
	if len(ids) == 0 {
		return services, nil
	}

	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error finding services: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var service Service
		if err := cursor.Decode(&service); err != nil {
			return nil, fmt.Errorf("error decoding service: %v", err)
		}
		services[service.ID] = &service
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return services, nil
}

func (mdb *MongodbRepo) QueryServices(ctx context.Context, filter ServiceFilter) ([]*Service, error) {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(filter.SortSpec())
	cursor, err := col.Find(ctx, filter.Query(), opts)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %v", err)
	}
	defer cursor.Close(ctx)

	var services []*Service
	for cursor.Next(ctx) {
		var service Service
		if err := cursor.Decode(&service); err != nil {
			return nil, fmt.Errorf("error decoding service: %v", err)
		}
		services = append(services, &service)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return services, nil
}

func (mdb *MongodbRepo) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*Service, error) {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding provider services: %v", err)
	}
	defer cursor.Close(ctx)

	var services []*Service
	for cursor.Next(ctx) {
		var service Service
		if err := cursor.Decode(&service); err != nil {
			return nil, fmt.Errorf("error decoding service: %v", err)
		}
		services = append(services, &service)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return services, nil
}

func (mdb *MongodbRepo) UpdateService(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Service, error) {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Service
	err = col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating service: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	col, err := mdb.GetCollection(DBName, ServiceColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting service: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service not found: %w", ErrNotFound)
	}

	return nil
}
