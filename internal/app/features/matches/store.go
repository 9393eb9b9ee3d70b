package matches

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const matchesCollection = "matches"

// MongoStore handles match database operations.
type MongoStore struct {
	c *crud.Collection[Match]
}

// NewStore creates a match store. The fixture list orders by date ascending.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Match](db, matchesCollection, bson.D{{Key: "date", Value: 1}})}
}

// List returns all matches sorted by date ascending.
func (s *MongoStore) List(ctx context.Context) ([]Match, error) {
	return s.c.List(ctx, nil)
}

// ListByStatus returns matches in the given status, newest first.
func (s *MongoStore) ListByStatus(ctx context.Context, status string) ([]Match, error) {
	return s.c.ListSorted(ctx, bson.M{"status": status}, bson.D{{Key: "date", Value: -1}})
}

// ListUpcoming returns matches after now that are still upcoming, soonest first.
func (s *MongoStore) ListUpcoming(ctx context.Context, now time.Time) ([]Match, error) {
	filter := bson.M{
		"status": StatusUpcoming,
		"date":   bson.M{"$gt": now},
	}
	return s.c.ListSorted(ctx, filter, bson.D{{Key: "date", Value: 1}})
}

// Get returns the match with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (Match, error) {
	return s.c.Get(ctx, id)
}

// Create inserts a new match.
func (s *MongoStore) Create(ctx context.Context, m Match) (Match, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	id, err := s.c.Insert(ctx, m)
	if err != nil {
		return Match{}, err
	}
	m.ID = id
	return m, nil
}

// Update merges set into the match document and returns the result.
func (s *MongoStore) Update(ctx context.Context, id string, set bson.M) (Match, error) {
	set["updatedAt"] = time.Now().UTC()
	return s.c.Update(ctx, id, set)
}

// Delete removes the match with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}
