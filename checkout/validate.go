// Package checkout validates the order form and simulates order placement.
// There is no payment integration and no backend order record; a confirmed
// order exists only as the reference handed back for display.
package checkout

import (
	"regexp"
	"strings"
)

// RequiredFields are the form fields that must be non-blank.
var RequiredFields = []string{"name", "email", "address", "city", "zip"}

// emailPattern is a shape check, not RFC validation: one "@", at least one
// "." after it, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the checkout form. It returns overall validity plus a
// per-field reason map for the presentation layer.
func Validate(fields map[string]string) (bool, map[string]string) {
	problems := make(map[string]string)

	for _, name := range RequiredFields {
		if strings.TrimSpace(fields[name]) == "" {
			problems[name] = "This field is required"
		}
	}

	if email := fields["email"]; email != "" && !emailPattern.MatchString(email) {
		problems["email"] = "Please enter a valid email address"
	}

	return len(problems) == 0, problems
}
