package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a storefront catalog item managed from the admin.
//
// Specifications is a free-form key→value mapping (e.g. "Material" →
// "Aluminum") rendered as a table on the storefront product page.
// Description may contain rich text; it is sanitized before storage.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Slug           string             `bson:"slug"`
	Title          string             `bson:"title"`
	TitleCI        string             `bson:"title_ci,omitempty"` // folded for search
	Description    string             `bson:"description,omitempty"`
	Price          float64            `bson:"price"`
	Discount       *float64           `bson:"discount,omitempty"` // percent, [0,100]
	Category       string             `bson:"category,omitempty"`
	ImageURL       string             `bson:"image_url,omitempty"`
	Specifications map[string]string  `bson:"specifications,omitempty"`
	Stock          int                `bson:"stock"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty"`
}

// EffectivePrice returns the price after applying the discount, if any.
func (p Product) EffectivePrice() float64 {
	if p.Discount == nil || *p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (100 - *p.Discount) / 100
}

// HasDiscount reports whether a positive discount is set.
func (p Product) HasDiscount() bool {
	return p.Discount != nil && *p.Discount > 0
}
