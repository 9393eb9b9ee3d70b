// Package contact implements the public contact form and the admin inbox.
package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message states. New submissions start as new; the admin panel marks them
// read on view.
const (
	StatusNew  = "new"
	StatusRead = "read"
)

var validStatuses = map[string]bool{
	StatusNew:  true,
	StatusRead: true,
}

// Message is a contact form submission.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// submitRequest is the public form payload.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// statusRequest is the admin status-update payload.
type statusRequest struct {
	Status string `json:"status"`
}
