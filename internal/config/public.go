package config

const (
	ControllerSaas = iota
	ControllerScript
	ControllerUnknown
)

func GetControllerType() int {
	return cache.controllerType
}

func GetControllerName(ctype int) string {
	switch ctype {
	case ControllerSaas:
		return "SaaS (cloud)"
	case ControllerScript:
		return "Script"
	default:
		return "Unknown"
	}
}

func GetDebugLevel() int {
	return cache.debugLevel
}

func GetAgentToken() string {
	return cache.apiKey
}

func GetCloudURL() string {
	return cache.cloudURL
}

func GetAgentName() string {
	return cache.agentName
}

func GetDeviceID() string {
	return cache.deviceID
}

func GetExporterPort() uint16 {
	return cache.exporterPort
}

func WatchEvents() bool {
	return cache.watchEvents
}
