// Package derive computes the admin dashboard's read-only views:
// per-customer rollups and storefront statistics. Everything here is a
// pure function over slices already fetched from MongoDB; nothing is
// written back, and every view is rebuilt from scratch on each load.
package derive

import (
	"sort"
	"strings"
	"time"

	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// CustomerProfile is the derived rollup for one customer, keyed by
// lowercased email. It is never persisted.
type CustomerProfile struct {
	Email       string // lowercased key
	Name        string
	Phone       string
	Address     string
	TotalOrders int
	TotalSpent  float64
	LastOrderAt time.Time
	Orders      []models.Order // this customer's orders, input order preserved
}

// AverageOrderValue returns TotalSpent / TotalOrders, or 0 for a
// profile with no orders.
func (p CustomerProfile) AverageOrderValue() float64 {
	if p.TotalOrders == 0 {
		return 0
	}
	return p.TotalSpent / float64(p.TotalOrders)
}

// BuildCustomerProfiles folds a flat order list into one profile per
// distinct case-insensitive email.
//
// Contact fields (name, phone, address) and LastOrderAt come from the
// customer's most recent order: they are overwritten only when an
// order's CreatedAt is strictly newer than the recorded LastOrderAt,
// so the result does not depend on input order. Missing totals count
// as zero spend. The returned slice is sorted by LastOrderAt
// descending (most recently active customer first).
func BuildCustomerProfiles(orders []models.Order) []CustomerProfile {
	byEmail := make(map[string]*CustomerProfile)
	keys := make([]string, 0)

	for _, o := range orders {
		email := strings.ToLower(strings.TrimSpace(o.CustomerEmail))
		p, ok := byEmail[email]
		if !ok {
			p = &CustomerProfile{
				Email:       email,
				Name:        o.CustomerName,
				Phone:       o.CustomerPhone,
				Address:     o.ShippingAddress,
				LastOrderAt: o.CreatedAt,
			}
			byEmail[email] = p
			keys = append(keys, email)
		}

		p.TotalOrders++
		p.TotalSpent += o.TotalPrice
		p.Orders = append(p.Orders, o)

		if o.CreatedAt.After(p.LastOrderAt) {
			p.Name = o.CustomerName
			p.Phone = o.CustomerPhone
			p.Address = o.ShippingAddress
			p.LastOrderAt = o.CreatedAt
		}
	}

	out := make([]CustomerProfile, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byEmail[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastOrderAt.After(out[j].LastOrderAt)
	})
	return out
}

// FilterProfiles returns the profiles whose name, email, or phone
// contains the query, case-insensitively. An empty query returns the
// input unchanged.
func FilterProfiles(profiles []CustomerProfile, q string) []CustomerProfile {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return profiles
	}
	out := make([]CustomerProfile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(p.Email, q) ||
			strings.Contains(p.Phone, q) {
			out = append(out, p)
		}
	}
	return out
}
