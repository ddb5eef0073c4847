package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheMetrics(t *testing.T) {
	// Use a dedicated label so other tests don't interfere with the counters.
	cacheType := "metrics-test"

	before := GetCacheStats(cacheType)

	RecordCacheRequest(cacheType)
	RecordCacheRequest(cacheType)
	RecordCacheHit(cacheType)
	RecordCacheMiss(cacheType)

	after := GetCacheStats(cacheType)

	assert.Equal(t, before.Requests+2, after.Requests)
	assert.Equal(t, before.Hits+1, after.Hits)
	assert.Equal(t, before.Misses+1, after.Misses)
	assert.InDelta(t, after.Hits/after.Requests, after.HitRatio, 0.001)
}

func TestGetCacheStats_NoTraffic(t *testing.T) {
	stats := GetCacheStats("never-used")

	assert.Zero(t, stats.Hits)
	assert.Zero(t, stats.Misses)
	assert.Zero(t, stats.Requests)
	assert.Zero(t, stats.HitRatio)
}
