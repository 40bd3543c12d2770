package personalization

import "strings"

// Screener decides whether free-text customer content is acceptable. The
// default is a denylist check; a real moderation service can be swapped in
// without touching validation.
type Screener interface {
	Allow(text string) bool
}

type denylistScreener struct {
	entries []string
}

// NewDenylistScreener builds a case-insensitive substring screener. Empty
// entries are dropped.
func NewDenylistScreener(entries []string) Screener {
	clean := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		clean = append(clean, entry)
	}
	return &denylistScreener{entries: clean}
}

func (s *denylistScreener) Allow(text string) bool {
	lowered := strings.ToLower(text)
	for _, entry := range s.entries {
		if strings.Contains(lowered, entry) {
			return false
		}
	}
	return true
}
