package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

type CacheMetricsCollector struct {
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Requests *prometheus.CounterVec
}

var (
	globalCollector *CacheMetricsCollector
	collectorOnce   sync.Once
)

func getCollector() *CacheMetricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &CacheMetricsCollector{
			Hits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "payanam_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"cache_type"},
			),
			Misses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "payanam_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"cache_type"},
			),
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "payanam_cache_requests_total",
					Help: "The total number of cache requests",
				},
				[]string{"cache_type"},
			),
		}
	})
	return globalCollector
}

// RecordCacheRequest increments the request counter for a cache type
func RecordCacheRequest(cacheType string) {
	getCollector().Requests.WithLabelValues(cacheType).Inc()
}

// RecordCacheHit increments the hit counter for a cache type
func RecordCacheHit(cacheType string) {
	getCollector().Hits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments the miss counter for a cache type
func RecordCacheMiss(cacheType string) {
	getCollector().Misses.WithLabelValues(cacheType).Inc()
}

// CacheStats is a point-in-time snapshot of counters for one cache type
type CacheStats struct {
	Hits     float64 `json:"hits"`
	Misses   float64 `json:"misses"`
	Requests float64 `json:"requests"`
	HitRatio float64 `json:"hit_ratio"`
}

// GetCacheStats reads the current counter values for a cache type
func GetCacheStats(cacheType string) CacheStats {
	collector := getCollector()

	stats := CacheStats{
		Hits:     counterValue(collector.Hits, cacheType),
		Misses:   counterValue(collector.Misses, cacheType),
		Requests: counterValue(collector.Requests, cacheType),
	}
	if stats.Requests > 0 {
		stats.HitRatio = stats.Hits / stats.Requests
	}
	return stats
}

func counterValue(vec *prometheus.CounterVec, cacheType string) float64 {
	m := &dto.Metric{}
	if err := vec.WithLabelValues(cacheType).Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
