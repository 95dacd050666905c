package inventory

import (
	"context"

	"github.com/tidwall/gjson"
)

// inspect builds one inventory record for the given container identifier.
// It always returns a record: a failed or empty inspect reply degrades to
// a record with only defaults, never to a missing entry.
func (c *Collector) inspect(ctx context.Context, id string) Record {
	rec := Record{}

	raw, err := c.engine.InspectRaw(ctx, id)
	if err != nil {
		c.reporter.Warning(id, "inspect failed: "+err.Error())
		return rec
	}

	payload := gjson.ParseBytes(raw)
	if !payload.IsObject() {
		c.reporter.Warning(id, "inspect returned no payload")
		return rec
	}

	rec.ContainerID = payload.Get("Id").String()
	rec.Image = payload.Get("Image").String()
	rec.Created = payload.Get("Created").String()

	// The three sub-objects populate disjoint field sets, the order is
	// fixed only to keep sweeps deterministic.
	applyConfig(&rec, payload, c.reporter)
	applyState(&rec, payload, c.reporter)
	applyHostConfig(&rec, payload, c.reporter)

	return rec
}
