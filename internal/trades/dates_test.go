package trades

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePublishedAt(t *testing.T) {
	ts, err := ParsePublishedAt("03.10.2026 14:05:09", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 3, 14, 5, 9, 0, time.UTC), ts)
}

func TestParsePublishedAt_UsesLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	ts, err := ParsePublishedAt("03.10.2026 14:05:09", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 3, 11, 5, 9, 0, time.UTC), ts.UTC())
}

func TestParsePublishedAt_RejectsOtherFormats(t *testing.T) {
	for _, text := range []string{
		"",
		"2026-10-03T14:05:09",
		"03.10.2026",
		"3.10.2026 14:05:09",
		"32.10.2026 14:05:09",
		"03/10/2026 14:05:09",
	} {
		_, err := ParsePublishedAt(text, time.UTC)
		assert.Error(t, err, text)
	}
}
