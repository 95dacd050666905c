package inventory

import (
	"context"
	"encoding/json"
	"io"

	"github.com/docker/docker/api/types/events"

	"github.com/dockwatch/inventory-agent/agent/docker"
	"github.com/dockwatch/inventory-agent/internal/env"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

// Watcher pushes a fresh inventory sweep to the platform whenever the
// engine reports a container lifecycle change, so the reported state does
// not go stale between enumerate requests.
type Watcher struct {
	writer    io.Writer
	collector *Collector
	events    docker.EventSource
}

func NewWatcher(w io.Writer, c *Collector, src docker.EventSource) *Watcher {
	return &Watcher{
		writer:    w,
		collector: c,
		events:    src,
	}
}

func (obj *Watcher) Name() string {
	return cmd + " watcher"
}

func (obj *Watcher) Run(ctx context.Context) error {
	go obj.run(ctx)
	return nil
}

func (obj *Watcher) run(ctx context.Context) {
	msgs, errs := obj.events.Events(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error().Println(pkgName, "event channel:", err)

		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if msg.Type != events.ContainerEventType {
				continue
			}
			switch msg.Action {
			case "create", "destroy", "start", "stop", "die", "pause", "unpause":
				obj.push(ctx)
			default:
				logger.Debug().Println(pkgName, "unhandled event", msg.Type, msg.Action)
			}
		}
	}
}

func (obj *Watcher) push(ctx context.Context) {
	resp := inventoryMessage{}
	resp.ID = env.MessageDefaultID
	resp.MsgType = cmd
	resp.Now()
	resp.Data = obj.collector.Sweep(ctx)

	raw, err := json.Marshal(&resp)
	if err == nil {
		_, err = obj.writer.Write(raw)
	}
	if err != nil {
		logger.Error().Println(pkgName, "event push:", err)
	}
}
