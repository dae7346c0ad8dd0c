// Package metrics holds the prometheus collectors. Collectors are registered
// on the registry passed to New; nothing touches the global registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/antekerwin/jeki/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jeki"

// Metrics implements domain.ReportRecorder. All methods are no-ops on a nil
// receiver so adapters can take an optional *Metrics.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	RateLimitHits    prometheus.Counter

	AnalysesTotal  *prometheus.CounterVec
	CompositeScore prometheus.Histogram
	PlatformScore  prometheus.Histogram
	RatingsTotal   *prometheus.CounterVec

	GenerationsTotal   *prometheus.CounterVec
	InferenceTotal     *prometheus.CounterVec
	InferenceDuration  prometheus.Histogram
	LeaderboardFetches *prometheus.CounterVec
	CacheHitsTotal     prometheus.Counter
	CacheMissesTotal   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"route"},
		),
		RequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
		RateLimitHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),

		AnalysesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of scored drafts",
			},
			[]string{"origin"},
		),
		CompositeScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "composite_score",
			Help:      "Distribution of composite scores",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		PlatformScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "platform_score",
			Help:      "Distribution of platform scores",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		RatingsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ratings_total",
				Help:      "Scored drafts by composite rating",
			},
			[]string{"rating"},
		),

		GenerationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of generated drafts",
			},
			[]string{"source"},
		),
		InferenceTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inference_requests_total",
				Help:      "Total number of inference API requests",
			},
			[]string{"status"},
		),
		InferenceDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_request_duration_seconds",
			Help:      "Inference request duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30},
		}),
		LeaderboardFetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "leaderboard_fetches_total",
				Help:      "Leaderboard fetches by outcome",
			},
			[]string{"outcome"},
		),
		CacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_cache_hits_total",
			Help:      "Total number of leaderboard cache hits",
		}),
		CacheMissesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_cache_misses_total",
			Help:      "Total number of leaderboard cache misses",
		}),
	}
}

// Handler serves the collectors registered on g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordRequest(route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, status).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestsInFlight() {
	if m == nil {
		return
	}
	m.RequestsInFlight.Inc()
}

func (m *Metrics) DecRequestsInFlight() {
	if m == nil {
		return
	}
	m.RequestsInFlight.Dec()
}

func (m *Metrics) RecordRateLimitHit() {
	if m == nil {
		return
	}
	m.RateLimitHits.Inc()
}

func (m *Metrics) RecordAnalysis(origin string, report domain.QualityReport) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(origin).Inc()
	m.CompositeScore.Observe(report.CompositeScore)
	m.PlatformScore.Observe(float64(report.Platform.Score))
	m.RatingsTotal.WithLabelValues(report.Rating).Inc()
}

func (m *Metrics) RecordGeneration(source string) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordInference(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.InferenceTotal.WithLabelValues(status).Inc()
	m.InferenceDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordLeaderboardFetch(outcome string) {
	if m == nil {
		return
	}
	m.LeaderboardFetches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}
