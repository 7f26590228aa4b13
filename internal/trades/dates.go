// Package trades holds the pure derivations behind the dashboard: display
// status, the synthesized trade timeline, period filtering and pagination.
package trades

import (
	"fmt"
	"time"
)

// PublishedLayout is the only accepted publish timestamp format (DD.MM.YYYY HH:mm:ss)
const PublishedLayout = "02.01.2006 15:04:05"

// ParsePublishedAt parses a signal publish timestamp in loc. A nil loc means time.Local.
func ParsePublishedAt(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	ts, err := time.ParseInLocation(PublishedLayout, text, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse publish time %q: %w", text, err)
	}
	return ts, nil
}
