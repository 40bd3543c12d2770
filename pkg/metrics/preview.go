package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PreviewMetrics records pipeline health for the personalization preview flow.
type PreviewMetrics struct {
	duration  *prometheus.HistogramVec
	renders   *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
}

// NewPreviewMetrics registers the preview metrics on the provided registerer.
func NewPreviewMetrics(reg prometheus.Registerer) *PreviewMetrics {
	if reg == nil {
		return &PreviewMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "preview_duration_seconds",
		Help: "End-to-end preview generation duration in seconds.",
		// The pipeline carries a 3s latency target; buckets bracket it.
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 10},
	}, []string{"theme"})
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preview_page_renders_total",
		Help: "Per-page render attempts by outcome.",
	}, []string{"outcome"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preview_cache_total",
		Help: "Preview cache lookups by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(duration, renders, cacheHits)
	return &PreviewMetrics{
		duration:  duration,
		renders:   renders,
		cacheHits: cacheHits,
	}
}

// ObserveDuration records the full pipeline duration for a theme.
func (p *PreviewMetrics) ObserveDuration(theme string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(theme)).Observe(duration.Seconds())
}

// IncRender counts one page render with the given outcome.
func (p *PreviewMetrics) IncRender(outcome string) {
	if p == nil || p.renders == nil {
		return
	}
	p.renders.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncCache counts a cache lookup outcome (hit/miss/error).
func (p *PreviewMetrics) IncCache(outcome string) {
	if p == nil || p.cacheHits == nil {
		return
	}
	p.cacheHits.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
