package agent

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/agent/docker"
	"github.com/dockwatch/inventory-agent/agent/exporter"
	"github.com/dockwatch/inventory-agent/agent/inventory"
	"github.com/dockwatch/inventory-agent/controller"
	"github.com/dockwatch/inventory-agent/internal/config"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

const pkgName = "Agent. "

type Agent struct {
	ctx        context.Context
	cancel     context.CancelFunc
	controller common.Controller
	commands   map[string]common.Command
	services   []common.Service
}

// NewAgent connects to the management platform and registers the
// inventory commands and background services.
func NewAgent(ctx context.Context, contype int) (*Agent, error) {
	a := &Agent{
		commands: make(map[string]common.Command),
	}
	a.ctx, a.cancel = context.WithCancel(ctx)

	var err error
	a.controller, err = controller.New(a.ctx, contype)
	if err != nil {
		return nil, err
	}

	// From now on warnings and errors are mirrored to the platform
	logger.SetupGlobalLogger(config.GetDebugLevel(), os.Stdout,
		logger.NewControllerWriter(a.controller))

	engine := docker.New()
	collector := inventory.NewCollector(engine, nil)

	a.addCommand(inventory.New(a.controller, collector))
	for _, name := range inventory.UnsupportedCommands() {
		a.addCommand(inventory.NewUnsupported(a.controller, name))
	}

	if config.WatchEvents() {
		if src, ok := engine.(docker.EventSource); ok {
			a.addService(inventory.NewWatcher(a.controller, collector, src))
		}
	}

	if port := config.GetExporterPort(); port > 0 {
		exp, err := exporter.New(port, inventory.NewMetricsCollector(collector))
		if err != nil {
			logger.Error().Println(pkgName, "exporter:", err)
		} else {
			a.addService(exp)
		}
	}

	return a, nil
}

// Run receives management messages and dispatches them until the
// connection reports EOF or the agent is stopped.
func (a *Agent) Run() error {
	a.startServices()

	for {
		raw, err := a.controller.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info().Println(pkgName, "controller connection closed")
				return nil
			}
			return err
		}

		a.processCommand(raw)
	}
}

// Stop terminates background services and closes the platform connection
func (a *Agent) Stop() {
	a.cancel()
	err := a.controller.Close()
	if err != nil {
		logger.Error().Println(pkgName, "controller close:", err)
	}
}
