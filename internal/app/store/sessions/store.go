// Package sessions persists login sessions keyed by the opaque cookie token.
package sessions

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const sessionsCollection = "sessions"

// Session is a login session document. Mongo's TTL monitor reaps expired
// sessions via the expiresAt index; GetByToken additionally checks the
// deadline so a session never outlives its expiry between TTL sweeps.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	UserID    primitive.ObjectID `bson:"userId"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Store handles session database operations.
type Store struct {
	coll *mongo.Collection
}

// New creates a session store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(sessionsCollection)}
}

// Create inserts a session for the user expiring after maxAge.
func (s *Store) Create(ctx context.Context, token string, userID primitive.ObjectID, maxAge time.Duration) error {
	now := time.Now().UTC()
	_, err := s.coll.InsertOne(ctx, Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(maxAge),
		CreatedAt: now,
	})
	return err
}

// GetByToken returns the unexpired session with the given token.
func (s *Store) GetByToken(ctx context.Context, token string) (Session, error) {
	var sess Session
	filter := bson.M{
		"token":     token,
		"expiresAt": bson.M{"$gt": time.Now().UTC()},
	}
	err := s.coll.FindOne(ctx, filter).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Session{}, crud.ErrNotFound
	}
	return sess, err
}

// DeleteByToken removes the session with the given token, if any.
func (s *Store) DeleteByToken(ctx context.Context, token string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// EnsureIndexes creates the unique token index and the TTL expiry index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}
