// Package htmlsanitize strips unsafe markup from rich-text fields
// (product descriptions, review comments) before they are stored or
// rendered. bluemonday's UGC policy allows basic formatting and links
// while removing scripts, event handlers, and javascript: URLs.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes and marks the result safe for template
// interpolation. Only use this on the way out to a template; storage
// keeps plain strings.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
