package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProduct creates a test product with the given title, price, and stock.
// Returns the created product with its generated ID.
func (f *Fixtures) CreateProduct(ctx context.Context, title string, price float64, stock int) models.Product {
	f.t.Helper()

	now := time.Now().UTC()
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Slug:        text.Fold(title),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test product description",
		Price:       price,
		Category:    "general",
		Stock:       stock,
		CreatedAt:   now,
	}

	_, err := f.db.Collection("products").InsertOne(ctx, product)
	if err != nil {
		f.t.Fatalf("failed to create test product: %v", err)
	}

	return product
}

// CreateDiscountedProduct creates a test product carrying a discount percentage.
func (f *Fixtures) CreateDiscountedProduct(ctx context.Context, title string, price, discount float64, stock int) models.Product {
	f.t.Helper()

	product := f.CreateProduct(ctx, title, price, stock)
	_, err := f.db.Collection("products").UpdateByID(ctx, product.ID, bson.M{"$set": bson.M{"discount": discount}})
	if err != nil {
		f.t.Fatalf("failed to set discount on test product: %v", err)
	}
	product.Discount = &discount
	return product
}

// CreateDeal creates a test deal banner at the given position.
func (f *Fixtures) CreateDeal(ctx context.Context, imageURL string, position int, active bool) models.Deal {
	f.t.Helper()

	now := time.Now().UTC()
	deal := models.Deal{
		ID:            primitive.NewObjectID(),
		ImageURL:      imageURL,
		LinkURL:       "https://example.com/deal",
		OrderPosition: position,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}

	_, err := f.db.Collection("deals").InsertOne(ctx, deal)
	if err != nil {
		f.t.Fatalf("failed to create test deal: %v", err)
	}

	return deal
}

// CreateOrder creates a test order for the given customer.
func (f *Fixtures) CreateOrder(ctx context.Context, customerName, customerEmail string, total float64, status models.OrderStatus) models.Order {
	f.t.Helper()

	now := time.Now().UTC()
	order := models.Order{
		ID:              primitive.NewObjectID(),
		CustomerName:    customerName,
		CustomerNameCI:  text.Fold(customerName),
		CustomerEmail:   customerEmail,
		CustomerPhone:   "555-0100",
		ShippingAddress: "1 Test Street, Testville",
		PaymentMethod:   "cod",
		ShippingCharge:  0,
		TotalPrice:      total,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       &now,
	}

	_, err := f.db.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		f.t.Fatalf("failed to create test order: %v", err)
	}

	return order
}

// CreateOrderAt creates a test order with an explicit creation time. Useful
// for tests that depend on ordering or recency.
func (f *Fixtures) CreateOrderAt(ctx context.Context, customerName, customerEmail string, total float64, status models.OrderStatus, createdAt time.Time) models.Order {
	f.t.Helper()

	order := models.Order{
		ID:              primitive.NewObjectID(),
		CustomerName:    customerName,
		CustomerNameCI:  text.Fold(customerName),
		CustomerEmail:   customerEmail,
		CustomerPhone:   "555-0100",
		ShippingAddress: "1 Test Street, Testville",
		PaymentMethod:   "cod",
		ShippingCharge:  0,
		TotalPrice:      total,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       &createdAt,
	}

	_, err := f.db.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		f.t.Fatalf("failed to create test order: %v", err)
	}

	return order
}

// CreateOrderItem creates a line item attached to the given order.
func (f *Fixtures) CreateOrderItem(ctx context.Context, orderID primitive.ObjectID, productTitle string, qty int, price float64) models.OrderItem {
	f.t.Helper()

	item := models.OrderItem{
		ID:              primitive.NewObjectID(),
		OrderID:         orderID,
		ProductTitle:    productTitle,
		Quantity:        qty,
		PriceAtPurchase: price,
		CreatedAt:       time.Now().UTC(),
	}

	_, err := f.db.Collection("order_items").InsertOne(ctx, item)
	if err != nil {
		f.t.Fatalf("failed to create test order item: %v", err)
	}

	return item
}

// CreateReview creates a test review. Approved reviews are visible on the
// storefront; unapproved ones only show up in moderation.
func (f *Fixtures) CreateReview(ctx context.Context, customerName string, rating int, approved bool) models.Review {
	f.t.Helper()

	review := models.Review{
		ID:           primitive.NewObjectID(),
		CustomerName: customerName,
		Rating:       rating,
		Comment:      "Test review comment",
		IsApproved:   approved,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := f.db.Collection("reviews").InsertOne(ctx, review)
	if err != nil {
		f.t.Fatalf("failed to create test review: %v", err)
	}

	return review
}

// CreateAdmin creates a test admin account with the given password hash.
// Pass an empty hash for a Google-only account.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email, passwordHash string) models.Admin {
	f.t.Helper()

	now := time.Now().UTC()
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        email,
		EmailCI:      text.Fold(email),
		PasswordHash: passwordHash,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    &now,
	}

	_, err := f.db.Collection("admins").InsertOne(ctx, admin)
	if err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}

	return admin
}
