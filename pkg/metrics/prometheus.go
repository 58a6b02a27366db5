package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal  *prometheus.CounterVec
	cacheHitsTotal *prometheus.CounterVec
	cacheMissTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	finalScore     *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_analyses_total",
				Help: "Total number of completed analyses",
			},
			[]string{"ticker", "recommendation"},
		),
		cacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"category"},
		),
		cacheMissTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"category"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		finalScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockscope_final_score",
				Help: "Last combined score for a ticker",
			},
			[]string{"ticker"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analysis.
func (r *Recorder) RecordAnalysis(ticker, recommendation string) {
	r.analysesTotal.WithLabelValues(ticker, recommendation).Inc()
}

// RecordCacheHit records a cache hit for a category.
func (r *Recorder) RecordCacheHit(category string) {
	r.cacheHitsTotal.WithLabelValues(category).Inc()
}

// RecordCacheMiss records a cache miss for a category.
func (r *Recorder) RecordCacheMiss(category string) {
	r.cacheMissTotal.WithLabelValues(category).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordFinalScore records the last combined score for a ticker.
func (r *Recorder) RecordFinalScore(ticker string, score float64) {
	r.finalScore.WithLabelValues(ticker).Set(score)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
