// Package matches implements the fixture list resource plus the derived
// results and season statistics endpoints.
package matches

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcunirea/clubsite/internal/app/system/formval"
)

// Match lifecycle states.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusUpcoming:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Match is a fixture document. Scores stay null until the match is completed.
type Match struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Opponent    string             `bson:"opponent" json:"opponent"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Venue       string             `bson:"venue" json:"venue"`
	IsHome      bool               `bson:"isHome" json:"isHome"`
	Status      string             `bson:"status" json:"status"`
	HomeScore   *int               `bson:"homeScore" json:"homeScore"`
	AwayScore   *int               `bson:"awayScore" json:"awayScore"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// matchForm carries the writable fields of a create or update request.
type matchForm struct {
	Opponent    *string `json:"opponent"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Venue       *string `json:"venue"`
	IsHome      *bool   `json:"isHome"`
	Status      *string `json:"status"`
	HomeScore   *int    `json:"homeScore"`
	AwayScore   *int    `json:"awayScore"`
	Description *string `json:"description"`
}

// parseMatchDate accepts RFC 3339 or a bare calendar date.
func parseMatchDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// parseMatchForm reads the form from a JSON body or multipart form fields.
func parseMatchForm(r *http.Request) (matchForm, error) {
	var f matchForm
	if r.MultipartForm == nil {
		err := json.NewDecoder(r.Body).Decode(&f)
		return f, err
	}
	var err error
	f.Opponent = formval.Str(r, "opponent")
	f.Date = formval.Str(r, "date")
	f.Time = formval.Str(r, "time")
	f.Venue = formval.Str(r, "venue")
	if f.IsHome, err = formval.Bool(r, "isHome"); err != nil {
		return f, err
	}
	f.Status = formval.Str(r, "status")
	if f.HomeScore, err = formval.Int(r, "homeScore"); err != nil {
		return f, err
	}
	if f.AwayScore, err = formval.Int(r, "awayScore"); err != nil {
		return f, err
	}
	f.Description = formval.Str(r, "description")
	return f, nil
}
