// internal/app/store/reviews/reviewstore.go
package reviewstore

import (
	"context"
	"strings"
	"time"

	"github.com/oniumlabs/oniumadmin/internal/app/system/htmlsanitize"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reviews")}
}

// Create inserts a new Review. Reviews arrive unapproved; moderation flips
// the flag. The comment is sanitized before it is stored.
func (s *Store) Create(ctx context.Context, rv models.Review) (models.Review, error) {
	rv.ID = primitive.NewObjectID()
	rv.Comment = htmlsanitize.Sanitize(rv.Comment)
	rv.CreatedAt = time.Now().UTC()

	if strings.TrimSpace(rv.CustomerName) == "" {
		return models.Review{}, mongo.CommandError{Message: "customer_name is required"}
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		return models.Review{}, mongo.CommandError{Message: "rating must be between 1 and 5"}
	}

	_, err := s.c.InsertOne(ctx, rv)
	if err != nil {
		return models.Review{}, err
	}
	return rv, nil
}

// GetByID returns a review by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Review, error) {
	var rv models.Review
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rv)
	if err != nil {
		return models.Review{}, err
	}
	return rv, nil
}

// SetApproved flips the moderation flag on one review.
func (s *Store) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"is_approved": approved}})
	return err
}

// Delete removes a review by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// All returns every review, newest first.
func (s *Store) All(ctx context.Context) ([]models.Review, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountUnapproved returns the number of reviews awaiting moderation.
func (s *Store) CountUnapproved(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"is_approved": false})
}
