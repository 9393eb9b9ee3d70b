package gallery

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const galleryCollection = "gallery"

// MongoStore handles gallery database operations.
type MongoStore struct {
	c *crud.Collection[Item]
}

// NewStore creates a gallery store. Items list newest first.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Item](db, galleryCollection, bson.D{{Key: "createdAt", Value: -1}})}
}

// List returns all gallery items newest first.
func (s *MongoStore) List(ctx context.Context) ([]Item, error) {
	return s.c.List(ctx, nil)
}

// Get returns the item with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (Item, error) {
	return s.c.Get(ctx, id)
}

// Create inserts a new gallery item.
func (s *MongoStore) Create(ctx context.Context, it Item) (Item, error) {
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	id, err := s.c.Insert(ctx, it)
	if err != nil {
		return Item{}, err
	}
	it.ID = id
	return it, nil
}

// Update merges set into the item document and returns the result.
func (s *MongoStore) Update(ctx context.Context, id string, set bson.M) (Item, error) {
	set["updatedAt"] = time.Now().UTC()
	return s.c.Update(ctx, id, set)
}

// Delete removes the item with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}
