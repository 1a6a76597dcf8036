package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository wraps one collection handle for the duration of a single
// remote operation. Handles are never retained across operations; callers
// construct a repository inside the connection scope they were given.
type MongoRepository[T any] struct {
	collection *mongo.Collection
}

func NewMongoRepository[T any](collection *mongo.Collection) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection}
}

func (r *MongoRepository[T]) Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Read a document by filter
func (r *MongoRepository[T]) Read(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return result, err
	}

	return result, nil
}

// Update a document
func (r *MongoRepository[T]) Update(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return err
	}

	return nil
}

func (r *MongoRepository[T]) FindAll(ctx context.Context, filter interface{}, sort interface{}) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts = opts.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, cursor.Err()
}

func (r *MongoRepository[T]) Upsert(ctx context.Context, filter interface{}, update interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": update}, opts)
	return err
}
