package productstore_test

import (
	"errors"
	"strings"
	"testing"

	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"github.com/oniumlabs/oniumadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := models.Product{
		Title:       "Steel Water Bottle 1L",
		Description: "Keeps drinks cold for 24 hours.",
		Price:       24.99,
		Category:    "kitchen",
		Stock:       40,
	}

	created, err := store.Create(ctx, p)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if !strings.HasPrefix(created.Slug, "steel-water-bottle-1l-") {
		t.Errorf("Slug: got %q, want steel-water-bottle-1l- prefix", created.Slug)
	}
	if created.TitleCI == "" {
		t.Error("expected TitleCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_SanitizesDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := models.Product{
		Title:       "Desk Lamp",
		Description: `<p>Nice lamp</p><script>alert("x")</script>`,
		Price:       10,
		Stock:       5,
	}

	created, err := store.Create(ctx, p)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Description != "<p>Nice lamp</p>" {
		t.Errorf("Description: got %q, want script stripped", created.Description)
	}
}

func TestStore_Create_MissingTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Product{Price: 5, Stock: 1})
	if err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestStore_Create_NegativePrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Product{Title: "Broken", Price: -1})
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestStore_Create_DiscountOutOfRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	discount := 150.0
	_, err := store.Create(ctx, models.Product{Title: "Over Discounted", Price: 10, Discount: &discount})
	if err == nil {
		t.Fatal("expected error for discount above 100")
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Unique slug index must be in place for the duplicate to be rejected.
	_, err := db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create unique index failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Product{Title: "Steel Bottle", Slug: "steel-bottle", Price: 10, Stock: 1}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err = store.Create(ctx, models.Product{Title: "Steel Bottle", Slug: "steel-bottle", Price: 12, Stock: 2})
	if !errors.Is(err, productstore.ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestStore_Create_SameTitleGetsDistinctSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create unique index failed: %v", err)
	}

	first, err := store.Create(ctx, models.Product{Title: "Steel Bottle", Price: 10, Stock: 1})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := store.Create(ctx, models.Product{Title: "Steel Bottle", Price: 12, Stock: 2})
	if err != nil {
		t.Fatalf("second Create with same title failed: %v", err)
	}

	if first.Slug == second.Slug {
		t.Errorf("same-title products share slug %q", first.Slug)
	}
	if !strings.HasPrefix(second.Slug, "steel-bottle-") {
		t.Errorf("Slug: got %q, want steel-bottle- prefix", second.Slug)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Product{Title: "Old Title", Price: 10, Stock: 5})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	discount := 20.0
	mut := models.Product{
		Title:    "New Title",
		Price:    15,
		Discount: &discount,
		Stock:    8,
		Category: "office",
	}
	if err := store.Update(ctx, created.ID, mut); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("Title: got %q, want %q", got.Title, "New Title")
	}
	if got.Slug != created.Slug {
		t.Errorf("Slug changed on update: got %q, want %q", got.Slug, created.Slug)
	}
	if got.Discount == nil || *got.Discount != 20 {
		t.Errorf("Discount: got %v, want 20", got.Discount)
	}
	if got.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set")
	}
	if got.EffectivePrice() != 12 {
		t.Errorf("EffectivePrice: got %v, want 12", got.EffectivePrice())
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Product{Title: "Doomed", Price: 1, Stock: 1})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted count on missing product: got %d, want 0", n)
	}
}

func TestStore_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := productstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"Steel Bottle", "Steel Pan", "Glass Jar"} {
		if _, err := store.Create(ctx, models.Product{Title: title, Price: 10, Stock: 1}); err != nil {
			t.Fatalf("Create %q failed: %v", title, err)
		}
	}

	got, err := store.Search(ctx, "steel")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("search results: got %d, want 2", len(got))
	}

	all, err := store.Search(ctx, "")
	if err != nil {
		t.Fatalf("empty Search failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("empty search results: got %d, want 3", len(all))
	}
}
