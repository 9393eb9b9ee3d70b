package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore counts documents across the content collections.
type MongoStore struct {
	db *mongo.Database
}

// NewStore creates a dashboard store.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Counts returns per-collection document totals plus the unread inbox count.
func (s *MongoStore) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	var err error

	if counts.Players, err = s.db.Collection("players").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.Matches, err = s.db.Collection("matches").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.News, err = s.db.Collection("news").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.Gallery, err = s.db.Collection("gallery").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.Sponsors, err = s.db.Collection("sponsors").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.Contacts, err = s.db.Collection("contacts").CountDocuments(ctx, bson.M{}); err != nil {
		return Counts{}, err
	}
	if counts.UnreadContacts, err = s.db.Collection("contacts").CountDocuments(ctx, bson.M{"status": "new"}); err != nil {
		return Counts{}, err
	}
	return counts, nil
}
