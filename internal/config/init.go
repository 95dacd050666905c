package config

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/dockwatch/inventory-agent/internal/logger"
)

const maxPort = 65535

func Init() {
	var tmpval uint

	initString(&cache.apiKey, "DOCKWATCH_AGENT_TOKEN", "")
	initString(&cache.cloudURL, "DOCKWATCH_CONTROLLER_URL",
		"controller.dockwatch.io")

	initControllerType()
	initDebugLevel()
	initAgentName()
	initDeviceID()

	initUint(&tmpval, "DOCKWATCH_EXPORTER_PORT", 0)
	if tmpval <= maxPort {
		cache.exporterPort = uint16(tmpval)
	}

	initBool(&cache.watchEvents, "DOCKWATCH_WATCH_EVENTS", false)
}

func Close() {
	// Anything needed to be closed or destroyed at the end of program, goes here
}

func initControllerType() {
	switch strings.ToLower(os.Getenv("DOCKWATCH_CONTROLLER_TYPE")) {
	case "script":
		cache.controllerType = ControllerScript
	case "saas", "":
		cache.controllerType = ControllerSaas
	default:
		cache.controllerType = ControllerUnknown
	}
}

func initDebugLevel() {
	switch strings.ToUpper(os.Getenv("DOCKWATCH_LOG_LEVEL")) {
	case "DEBUG":
		cache.debugLevel = logger.DebugLevel
	case "INFO":
		cache.debugLevel = logger.InfoLevel
	case "WARNING":
		cache.debugLevel = logger.WarningLevel
	case "ERROR":
		cache.debugLevel = logger.ErrorLevel
	default:
		cache.debugLevel = logger.InfoLevel
	}
}

func initAgentName() {
	initString(&cache.agentName, "DOCKWATCH_AGENT_NAME", "")
	if cache.agentName != "" {
		return
	}

	// Fallback to hostname, if the shell variable is missing
	name, err := os.Hostname()
	if err != nil {
		name = "UnknownDockwatchAgent"
	}
	cache.agentName = name
}

func initDeviceID() {
	initString(&cache.deviceID, "DOCKWATCH_DEVICE_ID", "")
	if cache.deviceID != "" {
		return
	}

	// machine-id is stable across reboots on any systemd host
	data, err := ioutil.ReadFile("/etc/machine-id")
	if err == nil {
		cache.deviceID = strings.Trim(string(data), "\n")
		return
	}

	cache.deviceID = cache.agentName
}
