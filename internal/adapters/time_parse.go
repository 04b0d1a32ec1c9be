package adapters

import (
	"strconv"
	"strings"
	"time"
)

// ParseBuildDate reads a pinned build date. It accepts unix seconds as
// used by SOURCE_DATE_EPOCH as well as RFC 3339 and plain date-time forms.
// The zero time means the value was empty or unparseable.
func ParseBuildDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	if seconds, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC()
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05 -0700 MST",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
