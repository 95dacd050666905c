package inventory

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/dockwatch/inventory-agent/agent/docker"
)

const pkgName = "ContainerInventory. "

type sweepStats struct {
	sweeps      uint64
	warnings    uint64
	lastRecords uint64
	lastMillis  int64
}

// Collector performs inventory sweeps: one synchronous pass over all
// containers known to the engine at call time.
type Collector struct {
	engine   docker.Engine
	reporter Reporter
	stats    sweepStats
}

// NewCollector builds a sweep collector. A nil reporter sends warnings
// to the agent log.
func NewCollector(engine docker.Engine, rep Reporter) *Collector {
	c := &Collector{engine: engine}
	if rep == nil {
		rep = logReporter{}
	}
	c.reporter = &countingReporter{c: c, next: rep}
	return c
}

// Sweep returns one record per container identifier the engine reports,
// stopped containers included, in engine order. Per-container failures
// degrade that container's record and never abort the sweep.
func (c *Collector) Sweep(ctx context.Context) []Record {
	started := time.Now()

	// Resolved once per sweep, every record is stamped with it below
	host, err := os.Hostname()
	if err != nil {
		host = ""
	}

	records := []Record{}

	ids, err := c.engine.ContainerIDs(ctx, true)
	if err != nil {
		c.reporter.Warning("", "container listing failed: "+err.Error())
		c.finishSweep(started, 0)
		return records
	}

	for _, id := range ids {
		rec := c.inspect(ctx, id)
		rec.Host = host
		records = append(records, rec)
	}

	c.finishSweep(started, len(records))
	return records
}

func (c *Collector) finishSweep(started time.Time, records int) {
	atomic.AddUint64(&c.stats.sweeps, 1)
	atomic.StoreUint64(&c.stats.lastRecords, uint64(records))
	atomic.StoreInt64(&c.stats.lastMillis, time.Since(started).Milliseconds())
}

// countingReporter keeps the warning totals for the metrics collector
// while forwarding to the configured sink.
type countingReporter struct {
	c    *Collector
	next Reporter
}

func (cr *countingReporter) Warning(container, message string) {
	atomic.AddUint64(&cr.c.stats.warnings, 1)
	cr.next.Warning(container, message)
}
