package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deal is a promotional banner shown on the storefront.
//
// OrderPosition controls display sort (ascending). Uniqueness of
// positions is not enforced; ties render in arbitrary order.
type Deal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ImageURL      string             `bson:"image_url"`
	LinkURL       string             `bson:"link_url,omitempty"`
	OrderPosition int                `bson:"order_position"`
	IsActive      bool               `bson:"is_active"`
	ExpiresAt     *time.Time         `bson:"expires_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     *time.Time         `bson:"updated_at,omitempty"`
}

// Expired reports whether the deal has an expiry in the past.
func (d Deal) Expired() bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(time.Now().UTC())
}
