package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is customer feedback submitted from the storefront. Reviews
// start unapproved and only show publicly once a staff member approves
// them; the dashboard surfaces the unapproved count.
type Review struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	ProductID    *primitive.ObjectID `bson:"product_id,omitempty"`
	CustomerName string              `bson:"customer_name"`
	Rating       int                 `bson:"rating"` // 1..5
	Comment      string              `bson:"comment,omitempty"`
	ImageURL     string              `bson:"image_url,omitempty"`
	IsApproved   bool                `bson:"is_approved"`
	CreatedAt    time.Time           `bson:"created_at"`
}

// Stars renders the rating as filled and hollow stars for templates.
// Ratings outside 1..5 clamp rather than panic.
func (r Review) Stars() string {
	n := r.Rating
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
