// Package monitoring collects in-process Prometheus metrics for the recipe
// use cases. Metrics live on a private registry; nothing is served over HTTP.
package monitoring

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	recipesAddedTotal    prometheus.Counter
	recipesRejectedTotal *prometheus.CounterVec
	quickFilterRunsTotal prometheus.Counter
	quickFilterMatches   prometheus.Histogram
	recipesDoubledTotal  prometheus.Counter
}

// NewMetricsCollector creates a collector registered on its own registry
func NewMetricsCollector(namespace string, logger *zap.Logger) *MetricsCollector {
	m := &MetricsCollector{
		logger:   logger,
		registry: prometheus.NewRegistry(),

		recipesAddedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_added_total",
			Help:      "Total number of recipes added to the collection",
		}),
		recipesRejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_rejected_total",
			Help:      "Total number of recipes rejected at construction",
		}, []string{"reason"}),
		quickFilterRunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quick_filter_runs_total",
			Help:      "Total number of quick-filter runs",
		}),
		quickFilterMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quick_filter_matches",
			Help:      "Number of recipes returned per quick-filter run",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		recipesDoubledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_doubled_total",
			Help:      "Total number of doubled recipes produced",
		}),
	}

	m.registry.MustRegister(
		m.recipesAddedTotal,
		m.recipesRejectedTotal,
		m.quickFilterRunsTotal,
		m.quickFilterMatches,
		m.recipesDoubledTotal,
	)

	return m
}

// Registry exposes the underlying registry
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRecipeAdded counts a recipe accepted into the collection
func (m *MetricsCollector) RecordRecipeAdded() {
	m.recipesAddedTotal.Inc()
}

// RecordRecipeRejected counts a construction failure by reason
func (m *MetricsCollector) RecordRecipeRejected(reason string) {
	m.recipesRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordQuickFilter records one quick-filter run and its match count
func (m *MetricsCollector) RecordQuickFilter(matches int) {
	m.quickFilterRunsTotal.Inc()
	m.quickFilterMatches.Observe(float64(matches))
}

// RecordRecipeDoubled counts a doubled recipe
func (m *MetricsCollector) RecordRecipeDoubled() {
	m.recipesDoubledTotal.Inc()
}

// Snapshot gathers counters and histogram counts into a flat map keyed by
// metric name, with label values appended as name{label=value}.
func (m *MetricsCollector) Snapshot() map[string]float64 {
	families, err := m.registry.Gather()
	if err != nil {
		m.logger.Warn("Failed to gather metrics", zap.Error(err))
		return map[string]float64{}
	}

	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			labels := metric.GetLabel()
			if len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, l := range labels {
					pairs = append(pairs, l.GetName()+"="+l.GetValue())
				}
				sort.Strings(pairs)
				name += "{" + strings.Join(pairs, ",") + "}"
			}

			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				out[name+"_count"] = float64(metric.GetHistogram().GetSampleCount())
				out[name+"_sum"] = metric.GetHistogram().GetSampleSum()
			}
		}
	}
	return out
}

// LogSnapshot writes the current snapshot as one structured log line
func (m *MetricsCollector) LogSnapshot() {
	snapshot := m.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Float64(k, snapshot[k]))
	}
	m.logger.Info("Recipe metrics", fields...)
}

// NopMetrics discards every observation. Used when metrics are disabled.
type NopMetrics struct{}

func (NopMetrics) RecordRecipeAdded() {}
func (NopMetrics) RecordRecipeRejected(string) {}
func (NopMetrics) RecordQuickFilter(int) {}
func (NopMetrics) RecordRecipeDoubled() {}
