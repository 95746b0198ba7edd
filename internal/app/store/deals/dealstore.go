// internal/app/store/deals/dealstore.go
package dealstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/urlutil"
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
	return &Store{c: db.Collection("deals")}
}

// Create inserts a new Deal banner and sets timestamps. New deals without an
// explicit position go to the end of the rotation.
func (s *Store) Create(ctx context.Context, d models.Deal) (models.Deal, error) {
	now := time.Now().UTC()

	d.ID = primitive.NewObjectID()
	d.CreatedAt = now
	d.UpdatedAt = &now

	if strings.TrimSpace(d.ImageURL) == "" {
		return models.Deal{}, mongo.CommandError{Message: "image_url is required"}
	}
	if !urlutil.IsValidAbsHTTPURL(d.ImageURL) && !strings.HasPrefix(d.ImageURL, "/static/") {
		return models.Deal{}, mongo.CommandError{Message: "image_url must be a valid http(s) URL"}
	}
	if d.LinkURL != "" && !urlutil.IsValidAbsHTTPURL(d.LinkURL) && !strings.HasPrefix(d.LinkURL, "/") {
		return models.Deal{}, mongo.CommandError{Message: "link_url must be a valid http(s) URL or site path"}
	}
	if d.OrderPosition < 0 {
		return models.Deal{}, mongo.CommandError{Message: "order_position cannot be negative"}
	}
	if d.OrderPosition == 0 {
		next, err := s.nextPosition(ctx)
		if err != nil {
			return models.Deal{}, err
		}
		d.OrderPosition = next
	}

	_, err := s.c.InsertOne(ctx, d)
	if err != nil {
		return models.Deal{}, err
	}
	return d, nil
}

// nextPosition returns one past the highest current order position.
func (s *Store) nextPosition(ctx context.Context) (int, error) {
	var top models.Deal
	err := s.c.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "order_position", Value: -1}})).Decode(&top)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return top.OrderPosition + 1, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Deal) error {
	set := bson.M{}

	if mut.ImageURL != "" {
		if !urlutil.IsValidAbsHTTPURL(mut.ImageURL) && !strings.HasPrefix(mut.ImageURL, "/static/") {
			return mongo.CommandError{Message: "image_url must be a valid http(s) URL"}
		}
		set["image_url"] = mut.ImageURL
	}

	// Link can be cleared.
	if mut.LinkURL != "" && !urlutil.IsValidAbsHTTPURL(mut.LinkURL) && !strings.HasPrefix(mut.LinkURL, "/") {
		return mongo.CommandError{Message: "link_url must be a valid http(s) URL or site path"}
	}
	set["link_url"] = mut.LinkURL

	if mut.OrderPosition < 0 {
		return mongo.CommandError{Message: "order_position cannot be negative"}
	}
	if mut.OrderPosition > 0 {
		set["order_position"] = mut.OrderPosition
	}

	set["is_active"] = mut.IsActive
	set["expires_at"] = mut.ExpiresAt
	set["updated_at"] = time.Now().UTC()

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// SetActive flips just the active flag.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// GetByID returns a deal by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Deal, error) {
	var d models.Deal
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return models.Deal{}, err
	}
	return d, nil
}

// Delete removes a deal by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// All returns every deal ordered by rotation position.
func (s *Store) All(ctx context.Context) ([]models.Deal, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order_position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var deals []models.Deal
	if err := cur.All(ctx, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// Count returns the number of deals matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
