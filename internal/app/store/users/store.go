// Package users persists the accounts that can sign in to the admin panel.
package users

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

const usersCollection = "users"

// Roles a user account can hold. Only admins may mutate site content.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account document. PasswordHash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the account holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Store handles user account database operations.
type Store struct {
	c *crud.Collection[User]
}

// New creates a user store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: crud.New[User](db, usersCollection, bson.D{{Key: "createdAt", Value: 1}})}
}

// Create inserts a new account. Returns crud.ErrDuplicate when the email is taken.
func (s *Store) Create(ctx context.Context, u User) (User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	id, err := s.c.Insert(ctx, u)
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

// GetByID returns the account with the given hex id.
func (s *Store) GetByID(ctx context.Context, id string) (User, error) {
	return s.c.Get(ctx, id)
}

// GetByEmail returns the account with the given email, or crud.ErrNotFound.
func (s *Store) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.c.Unwrap().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, crud.ErrNotFound
	}
	return u, err
}

// Count returns the number of accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.Count(ctx, nil)
}

// EnsureIndexes creates the unique email index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Unwrap().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
