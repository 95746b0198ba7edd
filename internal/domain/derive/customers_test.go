package derive_test

import (
	"testing"
	"time"

	"github.com/oniumlabs/oniumadmin/internal/domain/derive"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

func order(email, name string, total float64, created time.Time) models.Order {
	return models.Order{
		CustomerName:  name,
		CustomerEmail: email,
		TotalPrice:    total,
		Status:        models.StatusPending,
		CreatedAt:     created,
	}
}

func TestBuildCustomerProfiles_DistinctEmailCount(t *testing.T) {
	now := time.Now().UTC()
	orders := []models.Order{
		order("a@x.com", "Alice", 10, now),
		order("A@X.COM", "Alice", 20, now.Add(time.Minute)),
		order("b@x.com", "Bob", 5, now),
		order("c@x.com", "Cara", 0, now),
	}

	profiles := derive.BuildCustomerProfiles(orders)

	if len(profiles) != 3 {
		t.Fatalf("profile count: got %d, want 3 (distinct case-insensitive emails)", len(profiles))
	}
}

func TestBuildCustomerProfiles_TotalSpentSumsOnlyOwnOrders(t *testing.T) {
	now := time.Now().UTC()
	orders := []models.Order{
		order("a@x.com", "Alice", 100, now),
		order("b@x.com", "Bob", 999, now),
		order("a@x.com", "Alice", 50, now.Add(time.Hour)),
	}

	profiles := derive.BuildCustomerProfiles(orders)

	var alice *derive.CustomerProfile
	for i := range profiles {
		if profiles[i].Email == "a@x.com" {
			alice = &profiles[i]
		}
	}
	if alice == nil {
		t.Fatal("expected a profile for a@x.com")
	}
	if alice.TotalSpent != 150 {
		t.Errorf("TotalSpent: got %v, want 150", alice.TotalSpent)
	}
	if alice.TotalOrders != 2 {
		t.Errorf("TotalOrders: got %d, want 2", alice.TotalOrders)
	}
	if len(alice.Orders) != 2 {
		t.Errorf("order history length: got %d, want 2", len(alice.Orders))
	}
}

func TestBuildCustomerProfiles_MostRecentContactWins(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	older := order("a@x.com", "Old Name", 100, t1)
	older.CustomerPhone = "111"
	newer := order("a@x.com", "New Name", 50, t2)
	newer.CustomerPhone = "222"

	// Feed newest-first to prove the explicit timestamp compare, not
	// traversal order, decides which contact info sticks.
	profiles := derive.BuildCustomerProfiles([]models.Order{newer, older})

	if len(profiles) != 1 {
		t.Fatalf("profile count: got %d, want 1", len(profiles))
	}
	p := profiles[0]
	if p.TotalOrders != 2 {
		t.Errorf("TotalOrders: got %d, want 2", p.TotalOrders)
	}
	if p.TotalSpent != 150 {
		t.Errorf("TotalSpent: got %v, want 150", p.TotalSpent)
	}
	if p.Name != "New Name" {
		t.Errorf("Name: got %q, want contact from the newer order", p.Name)
	}
	if p.Phone != "222" {
		t.Errorf("Phone: got %q, want %q", p.Phone, "222")
	}
	if !p.LastOrderAt.Equal(t2) {
		t.Errorf("LastOrderAt: got %v, want %v", p.LastOrderAt, t2)
	}
}

func TestBuildCustomerProfiles_ZeroSpendIsValid(t *testing.T) {
	now := time.Now().UTC()
	profiles := derive.BuildCustomerProfiles([]models.Order{
		order("free@x.com", "Freya", 0, now),
	})

	if len(profiles) != 1 {
		t.Fatalf("profile count: got %d, want 1", len(profiles))
	}
	if profiles[0].TotalSpent != 0 {
		t.Errorf("TotalSpent: got %v, want 0", profiles[0].TotalSpent)
	}
}

func TestBuildCustomerProfiles_SortedByLastOrderDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	profiles := derive.BuildCustomerProfiles([]models.Order{
		order("old@x.com", "Old", 1, base),
		order("new@x.com", "New", 1, base.Add(time.Hour)),
		order("mid@x.com", "Mid", 1, base.Add(time.Minute)),
	})

	want := []string{"new@x.com", "mid@x.com", "old@x.com"}
	for i, email := range want {
		if profiles[i].Email != email {
			t.Errorf("position %d: got %q, want %q", i, profiles[i].Email, email)
		}
	}
}

func TestAverageOrderValue_ZeroOrders(t *testing.T) {
	p := derive.CustomerProfile{}
	if got := p.AverageOrderValue(); got != 0 {
		t.Errorf("AverageOrderValue with no orders: got %v, want 0", got)
	}
}

func TestAverageOrderValue(t *testing.T) {
	p := derive.CustomerProfile{TotalOrders: 4, TotalSpent: 100}
	if got := p.AverageOrderValue(); got != 25 {
		t.Errorf("AverageOrderValue: got %v, want 25", got)
	}
}

func TestFilterProfiles(t *testing.T) {
	now := time.Now().UTC()
	withPhone := order("bob@x.com", "Bob Stone", 1, now)
	withPhone.CustomerPhone = "555-0101"
	profiles := derive.BuildCustomerProfiles([]models.Order{
		order("alice@x.com", "Alice", 1, now),
		withPhone,
	})

	if got := derive.FilterProfiles(profiles, "STONE"); len(got) != 1 || got[0].Email != "bob@x.com" {
		t.Errorf("name search: got %d results, want just bob", len(got))
	}
	if got := derive.FilterProfiles(profiles, "0101"); len(got) != 1 {
		t.Errorf("phone search: got %d results, want 1", len(got))
	}
	if got := derive.FilterProfiles(profiles, ""); len(got) != 2 {
		t.Errorf("empty query: got %d results, want all 2", len(got))
	}
	if got := derive.FilterProfiles(profiles, "nobody"); len(got) != 0 {
		t.Errorf("no-match query: got %d results, want 0", len(got))
	}
}
