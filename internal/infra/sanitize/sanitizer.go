// Package sanitize strips markup from customer supplied text.
package sanitize

import (
	"html"
	"strings"

	"cleanrecord/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds the sanitize/unescape loop for input escaped several times over.
const maxPasses = 5

type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer returns a sanitizer that removes every HTML element.
// Entities are decoded so plain text round-trips, and the result is sanitized
// again until stable so escaped markup cannot come back out as markup.
func NewContentSanitizer() service.ContentSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *textSanitizer) Sanitize(input string) string {
	if input == "" {
		return ""
	}

	text := input
	for range maxPasses {
		next := html.UnescapeString(s.policy.Sanitize(text))
		if next == text {
			return strings.TrimSpace(next)
		}
		text = next
	}

	// Still changing: keep the escaped form.
	return strings.TrimSpace(s.policy.Sanitize(text))
}
