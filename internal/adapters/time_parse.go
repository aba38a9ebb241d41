package adapters

import (
	"strings"
	"time"
)

// normalizeTimestamp parses the timestamp formats cloud APIs hand back
// and re-renders them as RFC 3339 UTC. Unparsable values pass through
// untouched so the report never loses information.
func normalizeTimestamp(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02 15:04:05 -0700 MST",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Format(time.RFC3339)
		}
	}
	return trimmed
}
