package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/internal/metrics"
)

func TestRecorder_Snapshot(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveGenerate(10)
	r.ObserveSort("bubble", 4, 6, 4)
	r.ObserveSort("bubble", 4, 6, 0)
	r.ObserveSearch("binary", true, 2)
	r.ObserveSearch("binary", false, 3)

	samples, err := r.Snapshot()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, s := range samples {
		key := s.Name
		if s.Labels != "" {
			key += "{" + s.Labels + "}"
		}
		got[key] = s.Value
	}
	assert.Equal(t, 10.0, got["sortlab_generated_elements_total"])
	assert.Equal(t, 2.0, got[`sortlab_sort_runs_total{method="bubble"}`])
	assert.Equal(t, 12.0, got[`sortlab_sort_comparisons_total{method="bubble"}`])
	assert.Equal(t, 4.0, got[`sortlab_sort_swaps_total{method="bubble"}`])
	assert.Equal(t, 1.0, got[`sortlab_search_runs_total{method="binary",result="hit"}`])
	assert.Equal(t, 1.0, got[`sortlab_search_runs_total{method="binary",result="miss"}`])
	assert.Equal(t, 5.0, got[`sortlab_search_comparisons_total{method="binary"}`])
	assert.Equal(t, 2.0, got[`sortlab_sort_input_size_count{method="bubble"}`])

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i-1].Name, samples[i].Name, "sorted by name")
	}
}

func TestRecorder_FreshRegistry(t *testing.T) {
	r := metrics.NewRecorder()
	samples, err := r.Snapshot()
	require.NoError(t, err)
	require.Len(t, samples, 1, "only the unlabelled counter exists before any observation")
	assert.Equal(t, "sortlab_generated_elements_total 0", samples[0].String())
}

func TestRecorder_Isolated(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.ObserveGenerate(5)

	samples, err := b.Snapshot()
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 0.0, samples[0].Value, "recorders do not share a registry")
}
