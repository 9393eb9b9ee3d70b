package sponsors

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const sponsorsCollection = "sponsors"

// MongoStore handles sponsor database operations.
type MongoStore struct {
	c *crud.Collection[Sponsor]
}

// NewStore creates a sponsor store. Sponsors list by tier then name.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Sponsor](db, sponsorsCollection, bson.D{
		{Key: "tier", Value: 1},
		{Key: "name", Value: 1},
	})}
}

// List returns all sponsors sorted by tier then name.
func (s *MongoStore) List(ctx context.Context) ([]Sponsor, error) {
	return s.c.List(ctx, nil)
}

// Get returns the sponsor with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (Sponsor, error) {
	return s.c.Get(ctx, id)
}

// Create inserts a new sponsor.
func (s *MongoStore) Create(ctx context.Context, sp Sponsor) (Sponsor, error) {
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	id, err := s.c.Insert(ctx, sp)
	if err != nil {
		return Sponsor{}, err
	}
	sp.ID = id
	return sp, nil
}

// Update merges set into the sponsor document and returns the result.
func (s *MongoStore) Update(ctx context.Context, id string, set bson.M) (Sponsor, error) {
	set["updatedAt"] = time.Now().UTC()
	return s.c.Update(ctx, id, set)
}

// Delete removes the sponsor with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}
