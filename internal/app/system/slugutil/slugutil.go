// Package slugutil generates URL slugs for catalog products.
package slugutil

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Make lowercases the title, drops everything but letters, digits, and
// spaces, and joins words with dashes: "Steel Bottle 1L!" → "steel-bottle-1l".
// An empty result (all-symbol title) comes back as "item".
func Make(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteByte(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if slug == "" {
		return "item"
	}
	return slug
}

// MakeUnique appends a nanosecond timestamp so two products created
// with the same title get distinct slugs without a read-check. The
// unique index on products.slug is the real guard; this just keeps
// collisions from happening in practice.
func MakeUnique(title string) string {
	return Make(title) + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}
