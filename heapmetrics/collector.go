// Package heapmetrics exports the ledger of a containers heap to Prometheus.
package heapmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/containers"
)

// Source is anything that can snapshot a heap ledger, such as
// *containers.Heap or *containers.SafeHeap. A plain Heap must only be
// collected from the goroutine that owns it.
type Source interface {
	Metrics() containers.HeapMetrics
}

// Collector is a prometheus.Collector reading a Source on every scrape.
type Collector struct {
	src Source

	inUse  *prometheus.Desc
	peak   *prometheus.Desc
	allocs *prometheus.Desc
	frees  *prometheus.Desc
	live   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for src with metric names prefixed by
// namespace.
func NewCollector(namespace string, src Source) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "heap", name), help, nil, nil)
	}
	return &Collector{
		src:    src,
		inUse:  desc("in_use_bytes", "Bytes currently held by containers"),
		peak:   desc("peak_bytes", "High-water mark of bytes held by containers"),
		allocs: desc("allocs_total", "Total number of buffers handed out"),
		frees:  desc("frees_total", "Total number of buffers given back"),
		live:   desc("live_buffers", "Buffers handed out and not yet given back"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.inUse
	ch <- c.peak
	ch <- c.allocs
	ch <- c.frees
	ch <- c.live
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.InUse))
	ch <- prometheus.MustNewConstMetric(c.peak, prometheus.GaugeValue, float64(m.Peak))
	// Counters come from the lifetime totals so that a Reset never moves
	// them backwards.
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(m.AllocsTotal))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(m.FreesTotal))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(m.Live))
}
