// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/oniumlabs/oniumadmin/internal/app/system/authutil"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("an admin with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// Create inserts a new Admin, deriving EmailCI and setting timestamps.
func (s *Store) Create(ctx context.Context, a models.Admin) (models.Admin, error) {
	now := time.Now().UTC()

	a.ID = primitive.NewObjectID()
	a.Email = authutil.NormalizeEmail(a.Email)
	a.EmailCI = text.Fold(a.Email)
	if a.Status == "" {
		a.Status = "active"
	}
	a.CreatedAt = now
	a.UpdatedAt = &now

	if strings.TrimSpace(a.FullName) == "" {
		return models.Admin{}, mongo.CommandError{Message: "full_name is required"}
	}
	if !authutil.IsValidEmail(a.Email) {
		return models.Admin{}, mongo.CommandError{Message: "email is not valid"}
	}

	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Admin{}, ErrDuplicateEmail
		}
		return models.Admin{}, err
	}
	return a, nil
}

// GetByEmail returns the admin with the given email, matched case-insensitively.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&a)
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// GetByID returns an admin by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// RecordLogin stamps the last successful sign-in time.
func (s *Store) RecordLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"last_login_at": now,
		"updated_at":    now,
	}})
	return err
}

// LinkGoogleID attaches a Google subject identifier to an existing admin the
// first time they sign in with Google.
func (s *Store) LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"google_id":  googleID,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// Count returns the number of admins matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
