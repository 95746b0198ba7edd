package models

// OrderStatus is the closed set of lifecycle stages an order moves
// through. Keep the value set and the display mappings below in sync;
// adding a status means touching every switch in this file.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// AllOrderStatuses returns every valid status in lifecycle order.
// Used to build status selectors in templates.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// ParseOrderStatus maps a raw string onto the closed set.
// The second return is false for anything outside the set, including
// the empty string.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// IsValid reports whether the status belongs to the closed set.
func (s OrderStatus) IsValid() bool {
	_, ok := ParseOrderStatus(string(s))
	return ok
}

// Label returns the human-readable form for display.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// BadgeClass returns the CSS class used for the status pill in lists.
func (s OrderStatus) BadgeClass() string {
	switch s {
	case StatusPending:
		return "badge-pending"
	case StatusProcessing:
		return "badge-processing"
	case StatusShipped:
		return "badge-shipped"
	case StatusDelivered:
		return "badge-delivered"
	case StatusCancelled:
		return "badge-cancelled"
	}
	return "badge-unknown"
}
