package news

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

const newsCollection = "news"

// Publication filter modes for List, straight from the ?published query param.
const (
	// PublishedDefault returns articles that are published or predate the
	// published field. Legacy articles with no field count as published.
	PublishedDefault = ""
	// PublishedAll returns every article regardless of publication state.
	PublishedAll = "all"
	// PublishedFalse returns only explicitly unpublished articles.
	PublishedFalse = "false"
)

// publishedFilter maps a ?published query value to a Mongo filter.
func publishedFilter(mode string) bson.M {
	switch mode {
	case PublishedAll:
		return bson.M{}
	case PublishedFalse:
		return bson.M{"published": false}
	default:
		return bson.M{"$or": []bson.M{
			{"published": true},
			{"published": bson.M{"$exists": false}},
		}}
	}
}

// MongoStore handles news database operations.
type MongoStore struct {
	c *crud.Collection[Article]
}

// NewStore creates a news store. Articles list newest first.
func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: crud.New[Article](db, newsCollection, bson.D{{Key: "createdAt", Value: -1}})}
}

// List returns articles matching the publication mode, newest first.
func (s *MongoStore) List(ctx context.Context, publishedMode string) ([]Article, error) {
	return s.c.List(ctx, publishedFilter(publishedMode))
}

// Get returns the article with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (Article, error) {
	return s.c.Get(ctx, id)
}

// Create inserts a new article.
func (s *MongoStore) Create(ctx context.Context, a Article) (Article, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	id, err := s.c.Insert(ctx, a)
	if err != nil {
		return Article{}, err
	}
	a.ID = id
	return a, nil
}

// Update merges set into the article document and returns the result.
func (s *MongoStore) Update(ctx context.Context, id string, set bson.M) (Article, error) {
	set["updatedAt"] = time.Now().UTC()
	return s.c.Update(ctx, id, set)
}

// Delete removes the article with the given id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}
