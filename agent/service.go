package agent

import (
	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

func (a *Agent) addService(s common.Service) {
	a.services = append(a.services, s)
}

// startServices spawns the registered background services. They all
// terminate when the agent context is cancelled.
func (a *Agent) startServices() {
	for _, s := range a.services {
		logger.Info().Printf("%s Starting %s service.\n", pkgName, s.Name())
		err := s.Run(a.ctx)
		if err != nil {
			logger.Error().Printf("%s Service %s: %s\n", pkgName, s.Name(), err.Error())
		}
	}
}
