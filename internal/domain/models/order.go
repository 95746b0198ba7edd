package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a customer purchase. Contact fields are denormalized onto
// the order at checkout time; customer profiles are derived from them,
// never stored separately.
//
// TotalPrice is expected to equal SubtotalPrice + ShippingCharge but
// that invariant is owned by checkout, not this application. Subtotal
// may be absent on older orders; use Subtotal() which falls back to
// total minus shipping.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName        string             `bson:"customer_name"`
	CustomerNameCI      string             `bson:"customer_name_ci,omitempty"` // folded for search
	CustomerEmail       string             `bson:"customer_email"`
	CustomerPhone       string             `bson:"customer_phone,omitempty"`
	ShippingAddress     string             `bson:"shipping_address,omitempty"`
	SpecialInstructions string             `bson:"special_instructions,omitempty"`
	PaymentMethod       string             `bson:"payment_method,omitempty"`
	SubtotalPrice       *float64           `bson:"subtotal_price,omitempty"`
	ShippingCharge      float64            `bson:"shipping_charge"`
	TotalPrice          float64            `bson:"total_price"`
	Status              OrderStatus        `bson:"status"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           *time.Time         `bson:"updated_at,omitempty"`
}

// Subtotal returns the stored subtotal, or total minus shipping when
// the subtotal was never recorded.
func (o Order) Subtotal() float64 {
	if o.SubtotalPrice != nil {
		return *o.SubtotalPrice
	}
	return o.TotalPrice - o.ShippingCharge
}

// OrderItem is one line of an order. ProductTitle is a snapshot taken
// at purchase time so later catalog edits don't rewrite history;
// ProductID may be nil when the product has since been deleted.
type OrderItem struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	OrderID         primitive.ObjectID  `bson:"order_id"`
	ProductID       *primitive.ObjectID `bson:"product_id,omitempty"`
	ProductTitle    string              `bson:"product_title"`
	Quantity        int                 `bson:"quantity"`
	PriceAtPurchase float64             `bson:"price_at_purchase"`
	CreatedAt       time.Time           `bson:"created_at"`
}

// LineTotal returns quantity × unit price for this line.
func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.PriceAtPurchase
}
