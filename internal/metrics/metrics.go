// Package metrics accumulates session-wide statistics about the sorts and
// searches a learner runs, using Prometheus counters on a private registry.
//
// Nothing is exposed over the network; Snapshot flattens the registry so the
// menu can print it.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "sortlab"

// Recorder owns the counters for one session.
type Recorder struct {
	reg *prometheus.Registry

	sortRuns        *prometheus.CounterVec
	sortComparisons *prometheus.CounterVec
	sortSwaps       *prometheus.CounterVec
	searchRuns      *prometheus.CounterVec
	searchCompares  *prometheus.CounterVec
	generated       prometheus.Counter
	sortSize        *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		sortRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_runs_total",
			Help:      "Sort invocations by method.",
		}, []string{"method"}),
		sortComparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_comparisons_total",
			Help:      "Element comparisons performed by sorts, by method.",
		}, []string{"method"}),
		sortSwaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_swaps_total",
			Help:      "Swaps or shifts performed by sorts, by method.",
		}, []string{"method"}),
		searchRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_runs_total",
			Help:      "Search invocations by method and result.",
		}, []string{"method", "result"}),
		searchCompares: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_comparisons_total",
			Help:      "Element comparisons performed by searches, by method.",
		}, []string{"method"}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_elements_total",
			Help:      "Elements produced by the sequence generator.",
		}),
		sortSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sort_input_size",
			Help:      "Length of the sequences handed to each sort method.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}, []string{"method"}),
	}
	r.reg.MustRegister(
		r.sortRuns, r.sortComparisons, r.sortSwaps,
		r.searchRuns, r.searchCompares, r.generated, r.sortSize,
	)
	return r
}

// ObserveSort records one completed sort.
func (r *Recorder) ObserveSort(method string, size, comparisons, swaps int) {
	r.sortRuns.WithLabelValues(method).Inc()
	r.sortComparisons.WithLabelValues(method).Add(float64(comparisons))
	r.sortSwaps.WithLabelValues(method).Add(float64(swaps))
	r.sortSize.WithLabelValues(method).Observe(float64(size))
}

// ObserveSearch records one completed search.
func (r *Recorder) ObserveSearch(method string, found bool, comparisons int) {
	result := "miss"
	if found {
		result = "hit"
	}
	r.searchRuns.WithLabelValues(method, result).Inc()
	r.searchCompares.WithLabelValues(method).Add(float64(comparisons))
}

// ObserveGenerate records a freshly generated sequence.
func (r *Recorder) ObserveGenerate(size int) {
	r.generated.Add(float64(size))
}

// Sample is one flattened counter or histogram-count value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// String renders the sample as name{labels} value.
func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Snapshot gathers the registry and returns counters and histogram counts
// sorted by name then labels. Series never touched are absent.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: labelString(m.GetLabel())}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Name += "_count"
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return strings.Join(parts, ",")
}
