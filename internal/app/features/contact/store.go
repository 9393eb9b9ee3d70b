package contact

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const contactsCollection = "contacts"

// MongoStore handles contact message database operations.
type MongoStore struct {
	c *crud.Collection[Message]
}

// NewStore creates a contact store. Messages list newest first.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Message](db, contactsCollection, bson.D{{Key: "createdAt", Value: -1}})}
}

// List returns all messages newest first.
func (s *MongoStore) List(ctx context.Context) ([]Message, error) {
	return s.c.List(ctx, nil)
}

// Create inserts a new message.
func (s *MongoStore) Create(ctx context.Context, m Message) (Message, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	id, err := s.c.Insert(ctx, m)
	if err != nil {
		return Message{}, err
	}
	m.ID = id
	return m, nil
}

// UpdateStatus sets the message status and returns the updated document.
func (s *MongoStore) UpdateStatus(ctx context.Context, id, status string) (Message, error) {
	return s.c.Update(ctx, id, bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
}

// Delete removes the message with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// CountUnread returns the number of messages still in the new status.
func (s *MongoStore) CountUnread(ctx context.Context) (int64, error) {
	return s.c.Count(ctx, bson.M{"status": StatusNew})
}
