package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/antekerwin/jeki/internal/adapters/outbound/metrics"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UsesInjectedRegistry(t *testing.T) {
	// Two instances on separate registries must not collide.
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}

func TestRecordAnalysis(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	report := scoring.MustNewScorer(domain.DefaultRules()).Score("What is the TVL on this chain?")

	m.RecordAnalysis("analyze", report)
	m.RecordAnalysis("analyze", report)
	m.RecordAnalysis("generate", report)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("analyze")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("generate")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RatingsTotal.WithLabelValues(report.Rating)))
}

func TestRecordRequestAndCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.RecordRequest("/analyze", "200", 15*time.Millisecond)
	m.RecordRateLimitHit()
	m.RecordGeneration(domain.SourceTemplate)
	m.RecordLeaderboardFetch("fallback")
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordInference("ok", time.Second)
	m.IncRequestsInFlight()
	m.DecRequestsInFlight()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/analyze", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(domain.SourceTemplate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeaderboardFetches.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InferenceTotal.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "200", time.Millisecond)
		m.RecordAnalysis("analyze", domain.QualityReport{})
		m.RecordGeneration("template")
		m.RecordLeaderboardFetch("ok")
		m.RecordCacheHit()
		m.RecordCacheMiss()
		m.RecordRateLimitHit()
		m.RecordInference("error", 0)
		m.IncRequestsInFlight()
		m.DecRequestsInFlight()
	})
}

func TestHandler_ExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.RecordGeneration(domain.SourceTemplate)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `jeki_generations_total{source="template"} 1`)
}
