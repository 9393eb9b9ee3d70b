// Package players implements the team roster resource.
package players

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fcunirea/clubsite/internal/app/system/formval"
)

// Positions a player can hold, matching the roster filter on the public site.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

var validPositions = map[string]bool{
	PositionGoalkeeper: true,
	PositionDefender:   true,
	PositionMidfielder: true,
	PositionForward:    true,
}

var positionCaser = cases.Title(language.English)

// canonicalPosition normalizes position input casing ("forward" -> "Forward").
func canonicalPosition(s string) string {
	return positionCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

// Player is a roster document.
type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Position     string             `bson:"position" json:"position"`
	JerseyNumber int                `bson:"jerseyNumber" json:"jerseyNumber"`
	Photo        string             `bson:"photo" json:"photo"`
	Age          int                `bson:"age" json:"age"`
	Height       string             `bson:"height" json:"height"`
	Weight       string             `bson:"weight" json:"weight"`
	Bio          string             `bson:"bio" json:"bio"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// playerForm carries the writable fields of a create or update request.
// Nil fields were absent from the request.
type playerForm struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	JerseyNumber *int    `json:"jerseyNumber"`
	Age          *int    `json:"age"`
	Height       *string `json:"height"`
	Weight       *string `json:"weight"`
	Bio          *string `json:"bio"`
}

// parsePlayerForm reads the form from a JSON body or multipart form fields.
func parsePlayerForm(r *http.Request) (playerForm, error) {
	var f playerForm
	if r.MultipartForm == nil {
		err := json.NewDecoder(r.Body).Decode(&f)
		return f, err
	}
	var err error
	f.Name = formval.Str(r, "name")
	f.Position = formval.Str(r, "position")
	if f.JerseyNumber, err = formval.Int(r, "jerseyNumber"); err != nil {
		return f, err
	}
	if f.Age, err = formval.Int(r, "age"); err != nil {
		return f, err
	}
	f.Height = formval.Str(r, "height")
	f.Weight = formval.Str(r, "weight")
	f.Bio = formval.Str(r, "bio")
	return f, nil
}
