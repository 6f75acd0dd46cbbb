package helper

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips HTML-significant content from free-text fields before they
// are validated or persisted. Sanitizing is idempotent.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes all markup from s.
func (s *Sanitizer) Clean(value string) string {
	return s.policy.Sanitize(value)
}

// CleanInt coerces a query-string value to a non-negative integer. Anything
// that does not parse, or parses negative, falls back to def.
func (s *Sanitizer) CleanInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// CleanSearch sanitizes a search string and normalizes hyphens to spaces so
// hyphenated terms match the full-text index.
func (s *Sanitizer) CleanSearch(value string) string {
	return strings.ReplaceAll(s.Clean(value), "-", " ")
}
