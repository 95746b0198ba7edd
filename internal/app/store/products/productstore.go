// internal/app/store/products/productstore.go
package productstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/oniumlabs/oniumadmin/internal/app/system/htmlsanitize"
	"github.com/oniumlabs/oniumadmin/internal/app/system/slugutil"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateSlug = errors.New("a product with this slug already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("products")}
}

// Create inserts a new Product, deriving Slug/TitleCI and setting timestamps.
// The description is sanitized before it is stored.
func (s *Store) Create(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now().UTC()

	p.ID = primitive.NewObjectID()
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slugutil.MakeUnique(p.Title)
	}
	p.TitleCI = text.Fold(p.Title)
	p.Description = htmlsanitize.Sanitize(p.Description)
	p.CreatedAt = now

	if strings.TrimSpace(p.Title) == "" {
		return models.Product{}, mongo.CommandError{Message: "title is required"}
	}
	if p.Price < 0 {
		return models.Product{}, mongo.CommandError{Message: "price cannot be negative"}
	}
	if p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100) {
		return models.Product{}, mongo.CommandError{Message: "discount must be between 0 and 100"}
	}
	if p.Stock < 0 {
		return models.Product{}, mongo.CommandError{Message: "stock cannot be negative"}
	}
	if p.ImageURL != "" && !urlutil.IsValidAbsHTTPURL(p.ImageURL) && !strings.HasPrefix(p.ImageURL, "/static/") {
		return models.Product{}, mongo.CommandError{Message: "image_url must be a valid http(s) URL"}
	}

	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Product{}, ErrDuplicateSlug
		}
		return models.Product{}, err
	}
	return p, nil
}

// Update modifies mutable fields and refreshes UpdatedAt. The slug is
// deliberately left alone so storefront links keep working.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Product) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
		set["title_ci"] = text.Fold(mut.Title)
	}

	// Description and category can be cleared.
	set["description"] = htmlsanitize.Sanitize(mut.Description)
	set["category"] = mut.Category
	set["specifications"] = mut.Specifications

	if mut.Price < 0 {
		return mongo.CommandError{Message: "price cannot be negative"}
	}
	set["price"] = mut.Price

	if mut.Discount != nil {
		if *mut.Discount < 0 || *mut.Discount > 100 {
			return mongo.CommandError{Message: "discount must be between 0 and 100"}
		}
		set["discount"] = mut.Discount
	} else {
		set["discount"] = nil
	}

	if mut.Stock < 0 {
		return mongo.CommandError{Message: "stock cannot be negative"}
	}
	set["stock"] = mut.Stock

	if mut.ImageURL != "" {
		if !urlutil.IsValidAbsHTTPURL(mut.ImageURL) && !strings.HasPrefix(mut.ImageURL, "/static/") {
			return mongo.CommandError{Message: "image_url must be a valid http(s) URL"}
		}
		set["image_url"] = mut.ImageURL
	}

	now := time.Now().UTC()
	set["updated_at"] = now

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// GetByID returns a product by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// GetBySlug returns a product by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes a product by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns products matching the given filter with optional find options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Product, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Search returns products whose folded title starts with the folded query,
// newest first. An empty query returns all products.
func (s *Store) Search(ctx context.Context, q string) ([]models.Product, error) {
	filter := bson.M{}
	if folded := text.Fold(q); folded != "" {
		lo, hi := text.PrefixRange(folded)
		filter["title_ci"] = bson.M{"$gte": lo, "$lt": hi}
	}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// Count returns the number of products matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
