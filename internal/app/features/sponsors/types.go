// Package sponsors implements the sponsor resource. Tiers group sponsors on
// the public page; the list sorts by tier name, then sponsor name.
package sponsors

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcunirea/clubsite/internal/app/system/formval"
)

// Sponsor tiers.
const (
	TierMain      = "main"
	TierSecondary = "secondary"
	TierPartner   = "partner"
)

var validTiers = map[string]bool{
	TierMain:      true,
	TierSecondary: true,
	TierPartner:   true,
}

// Sponsor is a sponsor document. The logo is a required attachment.
type Sponsor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Logo        string             `bson:"logo" json:"logo"`
	Website     string             `bson:"website" json:"website"`
	Tier        string             `bson:"tier" json:"tier"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// sponsorForm carries the writable fields of a create or update request.
type sponsorForm struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	Tier        *string `json:"tier"`
	Description *string `json:"description"`
}

// parseSponsorForm reads the form from a JSON body or multipart form fields.
func parseSponsorForm(r *http.Request) (sponsorForm, error) {
	var f sponsorForm
	if r.MultipartForm == nil {
		err := json.NewDecoder(r.Body).Decode(&f)
		return f, err
	}
	f.Name = formval.Str(r, "name")
	f.Website = formval.Str(r, "website")
	f.Tier = formval.Str(r, "tier")
	f.Description = formval.Str(r, "description")
	return f, nil
}
