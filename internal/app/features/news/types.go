// Package news implements the club news resource with its publication filter.
package news

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcunirea/clubsite/internal/app/system/formval"
)

// News categories matching the public site filter.
const (
	CategoryMatch   = "match"
	CategoryPlayer  = "player"
	CategoryClub    = "club"
	CategoryGeneral = "general"
)

var validCategories = map[string]bool{
	CategoryMatch:   true,
	CategoryPlayer:  true,
	CategoryClub:    true,
	CategoryGeneral: true,
}

// Article is a news document. Published uses a pointer so documents written
// before the field existed (missing in Mongo) stay distinguishable from
// explicitly unpublished ones.
type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    string             `bson:"author" json:"author"`
	Image     string             `bson:"image" json:"image"`
	Category  string             `bson:"category" json:"category"`
	Published *bool              `bson:"published,omitempty" json:"published,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// articleForm carries the writable fields of a create or update request.
type articleForm struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Author    *string `json:"author"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// parseArticleForm reads the form from a JSON body or multipart form fields.
func parseArticleForm(r *http.Request) (articleForm, error) {
	var f articleForm
	if r.MultipartForm == nil {
		err := json.NewDecoder(r.Body).Decode(&f)
		return f, err
	}
	var err error
	f.Title = formval.Str(r, "title")
	f.Content = formval.Str(r, "content")
	f.Author = formval.Str(r, "author")
	f.Category = formval.Str(r, "category")
	if f.Published, err = formval.Bool(r, "published"); err != nil {
		return f, err
	}
	return f, nil
}
