package players

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const playersCollection = "players"

// MongoStore handles player database operations.
type MongoStore struct {
	c *crud.Collection[Player]
}

// NewStore creates a player store. The roster lists by jersey number ascending.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Player](db, playersCollection, bson.D{{Key: "jerseyNumber", Value: 1}})}
}

// List returns all players sorted by jersey number.
func (s *MongoStore) List(ctx context.Context) ([]Player, error) {
	return s.c.List(ctx, nil)
}

// Get returns the player with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (Player, error) {
	return s.c.Get(ctx, id)
}

// Create inserts a new player. Returns crud.ErrDuplicate when the jersey
// number is already taken.
func (s *MongoStore) Create(ctx context.Context, p Player) (Player, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	id, err := s.c.Insert(ctx, p)
	if err != nil {
		return Player{}, err
	}
	p.ID = id
	return p, nil
}

// Update merges set into the player document and returns the result.
func (s *MongoStore) Update(ctx context.Context, id string, set bson.M) (Player, error) {
	set["updatedAt"] = time.Now().UTC()
	return s.c.Update(ctx, id, set)
}

// Delete removes the player with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// EnsureIndexes creates the unique jersey number index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Unwrap().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "jerseyNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
