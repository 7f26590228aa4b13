package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/traders", "GET", "200"))

	ObserveRequest("/api/v1/traders", "GET", 200, 3*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/traders", "GET", "200"))
	assert.Equal(t, before+1, after)
}

func TestTimelineFallback(t *testing.T) {
	before := testutil.ToFloat64(timelineFallbackTotal)
	TimelineFallback()
	assert.Equal(t, before+1, testutil.ToFloat64(timelineFallbackTotal))
}

func TestCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(providerCacheTotal.WithLabelValues("trades", "hit"))
	CacheLookup("trades", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(providerCacheTotal.WithLabelValues("trades", "hit")))
}
