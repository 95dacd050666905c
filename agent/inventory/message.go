package inventory

import "github.com/dockwatch/inventory-agent/agent/common"

// State is the coarse container lifecycle state reported to the platform.
// Derived from the inspect payload, see applyState.
type State string

const (
	StateRunning State = "Running"
	StatePaused  State = "Paused"
	StateFailed  State = "Failed"
	StateStopped State = "Stopped"
)

// Record is one flat inventory entry per container. Array and mapping
// fields (environment, command, links, ports) carry the engine's own JSON
// serialization verbatim, the reporting layer decodes them if it needs to.
type Record struct {
	ContainerID  string `json:"container_id"`
	Image        string `json:"image_id"`
	Created      string `json:"created_at"`
	Host         string `json:"host_name"`
	Hostname     string `json:"container_hostname"`
	Env          string `json:"environment_vars"`
	Command      string `json:"command"`
	ComposeGroup string `json:"compose_group,omitempty"`
	ExitCode     int    `json:"exit_code"`
	State        State  `json:"state,omitempty"`
	StartedAt    string `json:"started_at,omitempty"`
	FinishedAt   string `json:"finished_at,omitempty"`
	Links        string `json:"links"`
	Ports        string `json:"ports"`
}

type inventoryRequest struct {
	common.MessageHeader
	Data interface{} `json:"data,omitempty"`
}

type inventoryMessage struct {
	common.MessageHeader
	Data []Record `json:"data"`
}
