package derive

import (
	"sort"

	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// LowStockThreshold is the default stock level at or below which a
// product is flagged for restocking. Deployments can override it via
// the low_stock_threshold config key.
const LowStockThreshold = 5

// topN caps the display lists on the dashboard (low stock, best
// sellers, recent orders).
const topN = 5

// BestSeller is one row of the best-sellers table. Grouping is by
// product title snapshot, not product id: two distinct products that
// shared a title merge into one row. The snapshot is all an order item
// carries once the product is deleted, so title is the honest key.
type BestSeller struct {
	Title   string
	Sales   int     // units sold
	Revenue float64 // Σ quantity × price at purchase
}

// Stats is the full set of dashboard numbers, computed in one pass
// over independently fetched collections.
type Stats struct {
	TotalRevenue  float64
	TotalOrders   int
	TotalProducts int
	PendingOrders int

	// LowStockCount covers every product at or below the threshold;
	// LowStockList is the display slice, sorted ascending by stock and
	// capped. The two are computed from the same filtered set but must
	// not be conflated.
	LowStockCount int
	LowStockList  []models.Product

	BestSellers  []BestSeller
	RecentOrders []models.Order

	UnapprovedReviews int64
}

// BuildStats derives dashboard statistics. Orders are expected in
// ascending creation order (the natural fetch order); RecentOrders is
// the newest-first tail of that list. unapprovedReviews comes from a
// server-side count, not a fetched collection. lowStockThreshold is
// the configured cutoff (LowStockThreshold when unconfigured).
func BuildStats(orders []models.Order, products []models.Product, items []models.OrderItem, unapprovedReviews int64, lowStockThreshold int) Stats {
	s := Stats{
		TotalOrders:       len(orders),
		TotalProducts:     len(products),
		UnapprovedReviews: unapprovedReviews,
	}

	for _, o := range orders {
		s.TotalRevenue += o.TotalPrice
		if o.Status == models.StatusPending {
			s.PendingOrders++
		}
	}

	s.LowStockCount, s.LowStockList = lowStock(products, lowStockThreshold)
	s.BestSellers = bestSellers(items)
	s.RecentOrders = recentOrders(orders)
	return s
}

// lowStock returns the count over the full filtered set and the
// sorted, capped display list.
func lowStock(products []models.Product, threshold int) (int, []models.Product) {
	var flagged []models.Product
	for _, p := range products {
		if p.Stock <= threshold {
			flagged = append(flagged, p)
		}
	}
	count := len(flagged)

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Stock < flagged[j].Stock
	})
	if len(flagged) > topN {
		flagged = flagged[:topN]
	}
	return count, flagged
}

// bestSellers groups line items by product title, summing units and
// revenue, and returns the top sellers by unit count.
func bestSellers(items []models.OrderItem) []BestSeller {
	byTitle := make(map[string]*BestSeller)
	order := make([]string, 0)

	for _, it := range items {
		b, ok := byTitle[it.ProductTitle]
		if !ok {
			b = &BestSeller{Title: it.ProductTitle}
			byTitle[it.ProductTitle] = b
			order = append(order, it.ProductTitle)
		}
		b.Sales += it.Quantity
		b.Revenue += it.LineTotal()
	}

	out := make([]BestSeller, 0, len(order))
	for _, title := range order {
		out = append(out, *byTitle[title])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sales > out[j].Sales
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// recentOrders returns the last N of an ascending-by-creation list,
// newest first.
func recentOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, topN)
	for i := len(orders) - 1; i >= 0 && len(out) < topN; i-- {
		out = append(out, orders[i])
	}
	return out
}
