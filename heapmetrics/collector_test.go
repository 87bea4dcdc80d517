package heapmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/containers"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.Metric, len(families))
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		out[mf.GetName()] = mf.GetMetric()[0]
	}
	return out
}

func TestCollector(t *testing.T) {
	h := containers.NewHeap()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector("test", h)))

	s := containers.ByteStringFrom(h, "abc")
	arr := containers.NewGrowableArray[byte](h)
	for i := 0; i < 3; i++ {
		arr.PushBack(byte(i))
	}

	m := gather(t, reg)
	require.Len(t, m, 5)
	assert.Equal(t, float64(4+4), m["test_heap_in_use_bytes"].GetGauge().GetValue())
	assert.Equal(t, float64(4+2+4), m["test_heap_peak_bytes"].GetGauge().GetValue())
	assert.Equal(t, float64(3), m["test_heap_allocs_total"].GetCounter().GetValue())
	assert.Equal(t, float64(1), m["test_heap_frees_total"].GetCounter().GetValue())
	assert.Equal(t, float64(2), m["test_heap_live_buffers"].GetGauge().GetValue())

	s.Release()
	arr.Release()

	m = gather(t, reg)
	assert.Zero(t, m["test_heap_in_use_bytes"].GetGauge().GetValue())
	assert.Zero(t, m["test_heap_live_buffers"].GetGauge().GetValue())
}

func TestCollectorSafeHeap(t *testing.T) {
	h := containers.NewSafeHeap()
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("", h))

	s := containers.ByteStringFrom(h, "x")
	defer s.Release()

	m := gather(t, reg)
	assert.Equal(t, float64(2), m["heap_in_use_bytes"].GetGauge().GetValue())
}

func TestCollectorCountersSurviveReset(t *testing.T) {
	h := containers.NewHeap()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector("test", h)))

	arr := containers.NewGrowableArray[byte](h)
	for i := 0; i < 3; i++ {
		arr.PushBack(byte(i))
	}
	before := gather(t, reg)

	h.Reset()
	arr.Release()

	after := gather(t, reg)
	for _, name := range []string{"test_heap_allocs_total", "test_heap_frees_total"} {
		assert.GreaterOrEqual(t, after[name].GetCounter().GetValue(), before[name].GetCounter().GetValue(), name)
	}
	assert.Equal(t, float64(2), after["test_heap_allocs_total"].GetCounter().GetValue())
	assert.Equal(t, float64(2), after["test_heap_frees_total"].GetCounter().GetValue())
	assert.Zero(t, after["test_heap_live_buffers"].GetGauge().GetValue())
}
