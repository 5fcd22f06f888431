package upstream

import "time"

// wireTimeLayouts are the timestamp formats the backend has been seen
// emitting, most specific first.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseWireTime parses a backend timestamp, tolerating the layout drift
// across resource versions. Unparseable or empty values come back as
// the zero time rather than an error: a bad timestamp should not sink
// an otherwise usable record.
func parseWireTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formatWireTime renders a timestamp for a mutation payload. Zero times
// serialize as the empty string, which the backend treats as unset.
func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
