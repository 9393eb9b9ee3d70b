// Package crud implements the generic Mongo document collection contract that
// every resource store in this app instantiates: list with a default sort,
// get/update/delete by id, and insert with duplicate-key detection.
package crud

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches the requested id.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate key")

// Collection wraps a Mongo collection of documents of type T with a
// per-entity default sort order.
type Collection[T any] struct {
	coll        *mongo.Collection
	defaultSort bson.D
}

// New creates a Collection for the named Mongo collection.
func New[T any](db *mongo.Database, name string, defaultSort bson.D) *Collection[T] {
	return &Collection[T]{
		coll:        db.Collection(name),
		defaultSort: defaultSort,
	}
}

// Unwrap returns the underlying Mongo collection for index management.
func (c *Collection[T]) Unwrap() *mongo.Collection {
	return c.coll
}

// List returns all documents matching filter in the default sort order.
// A nil filter matches everything. The result is never nil.
func (c *Collection[T]) List(ctx context.Context, filter bson.M) ([]T, error) {
	return c.ListSorted(ctx, filter, c.defaultSort)
}

// ListSorted returns all documents matching filter in the given sort order.
func (c *Collection[T]) ListSorted(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get returns the document with the given hex id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can address no document.
		return doc, ErrNotFound
	}
	err = c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	return doc, err
}

// Insert stores a new document and returns its generated id.
func (c *Collection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

// Update applies set as a $set merge to the document with the given hex id and
// returns the updated document. Fields not present in set are untouched.
func (c *Collection[T]) Update(ctx context.Context, id string, set bson.M) (T, error) {
	var doc T
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = c.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return doc, ErrDuplicate
	}
	return doc, err
}

// Delete removes the document with the given hex id, or returns ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of documents matching filter.
func (c *Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return c.coll.CountDocuments(ctx, filter)
}
