package inventory

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sweepsDesc = prometheus.NewDesc(
		"dockwatch_inventory_sweeps_total",
		"Completed inventory sweeps.",
		nil, nil)
	warningsDesc = prometheus.NewDesc(
		"dockwatch_inventory_warnings_total",
		"Degradation warnings produced during sweeps.",
		nil, nil)
	recordsDesc = prometheus.NewDesc(
		"dockwatch_inventory_last_sweep_records",
		"Container records in the most recent sweep.",
		nil, nil)
	durationDesc = prometheus.NewDesc(
		"dockwatch_inventory_last_sweep_duration_milliseconds",
		"Duration of the most recent sweep.",
		nil, nil)
)

type statsCollector struct {
	c *Collector
}

// NewMetricsCollector exposes the collector's sweep statistics to the
// prometheus exporter.
func NewMetricsCollector(c *Collector) prometheus.Collector {
	return &statsCollector{c: c}
}

func (sc *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sweepsDesc
	ch <- warningsDesc
	ch <- recordsDesc
	ch <- durationDesc
}

func (sc *statsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := &sc.c.stats

	ch <- prometheus.MustNewConstMetric(sweepsDesc, prometheus.CounterValue,
		float64(atomic.LoadUint64(&stats.sweeps)))
	ch <- prometheus.MustNewConstMetric(warningsDesc, prometheus.CounterValue,
		float64(atomic.LoadUint64(&stats.warnings)))
	ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue,
		float64(atomic.LoadUint64(&stats.lastRecords)))
	ch <- prometheus.MustNewConstMetric(durationDesc, prometheus.GaugeValue,
		float64(atomic.LoadInt64(&stats.lastMillis)))
}
