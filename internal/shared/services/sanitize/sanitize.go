// Package sanitize strips markup from customer-supplied free text before it
// is stored. Ticket subjects, descriptions and comment messages are plain
// text; anything resembling HTML is removed, not escaped.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Service interface {
	Clean(input string) string
}

type serviceImpl struct {
	policy *bluemonday.Policy
}

func NewService() Service {
	return &serviceImpl{
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) Clean(input string) string {
	cleaned := s.policy.Sanitize(input)
	// bluemonday escapes entities; the stored value is plain text
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}
