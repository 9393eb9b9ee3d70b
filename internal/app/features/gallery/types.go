// Package gallery implements the media gallery resource. The media type is
// derived from the uploaded file's MIME class, never supplied by the client.
package gallery

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcunirea/clubsite/internal/app/system/formval"
)

// Media types.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Item is a gallery document. For videos the thumbnail mirrors the media URL:
// no frame extraction happens, the client renders the video element itself.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"`
	URL         string             `bson:"url" json:"url"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// itemForm carries the writable fields of a create or update request.
type itemForm struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// parseItemForm reads the form from a JSON body or multipart form fields.
func parseItemForm(r *http.Request) (itemForm, error) {
	var f itemForm
	if r.MultipartForm == nil {
		err := json.NewDecoder(r.Body).Decode(&f)
		return f, err
	}
	f.Title = formval.Str(r, "title")
	f.Description = formval.Str(r, "description")
	return f, nil
}
