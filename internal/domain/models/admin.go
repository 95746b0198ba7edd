package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a staff account allowed into the dashboard. Sign-in is
// whitelist-based: an email either exists here or the user is turned
// away, regardless of how they authenticated.
//
// PasswordHash is a bcrypt hash; it is empty for admins who only sign
// in with Google. GoogleID is recorded on first Google sign-in.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`    // as entered
	EmailCI      string             `bson:"email_ci"` // folded, unique
	PasswordHash string             `bson:"password_hash,omitempty"`
	GoogleID     string             `bson:"google_id,omitempty"`
	Status       string             `bson:"status"` // "active" or "disabled"
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    *time.Time         `bson:"updated_at,omitempty"`
	LastLoginAt  *time.Time         `bson:"last_login_at,omitempty"`
}

// Disabled reports whether the account is blocked from signing in.
func (a Admin) Disabled() bool {
	return a.Status == "disabled"
}
