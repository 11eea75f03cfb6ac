package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Discovery Metrics
	TrendingFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_trending_fallbacks_total",
		Help: "Total number of trending requests served from the popular-tools fallback.",
	})
	TrendingEmptyUsageTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_trending_empty_usage_total",
		Help: "Total number of trending requests that found no usage data at all.",
	})
	UsageEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_usage_events_total",
		Help: "Total number of tool usage events recorded.",
	})

	// Bookmark Metrics
	BookmarkTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_bookmark_toggles_total",
		Help: "Total number of bookmark toggles.",
	}, []string{"action", "status"}) // action: "add" or "remove"
	BookmarkCacheSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_bookmark_cache_sessions",
		Help: "Number of device sessions with a live bookmark cache.",
	})
	BookmarkCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_bookmark_cache_lookups_total",
		Help: "Bookmark cache store lookups.",
	}, []string{"result"}) // result: "hit" or "miss"
)
