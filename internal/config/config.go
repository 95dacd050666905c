package config

// This struct caches the agent configuration, parsed once at startup.
// All values come from exported shell variables, some have generated
// or OS-derived fallbacks.
type configCache struct {
	apiKey         string // aka AGENT_TOKEN
	cloudURL       string
	deviceID       string
	controllerType int

	agentName    string
	debugLevel   int
	exporterPort uint16
	watchEvents  bool
}

var cache configCache
